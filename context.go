package buildkeep

import (
	"context"

	"github.com/randalmurphal/buildkeep/notify"
)

// =============================================================================
// Context Injection Helpers
// =============================================================================
// These helpers allow buildkeep services to be injected into context.Context
// for use by flowgraph nodes.

// serviceContextKey is a private type for context keys to avoid collisions
type serviceContextKey string

// Context keys for buildkeep services
const (
	archiverServiceKey serviceContextKey = "buildkeep.archiver"
	listenerServiceKey serviceContextKey = "buildkeep.listener"
	historyServiceKey  serviceContextKey = "buildkeep.history"
)

// WithArchiver adds an Archiver to the context
func WithArchiver(ctx context.Context, a *Archiver) context.Context {
	return context.WithValue(ctx, archiverServiceKey, a)
}

// ArchiverFromContext extracts the Archiver from context
func ArchiverFromContext(ctx context.Context) *Archiver {
	if a, ok := ctx.Value(archiverServiceKey).(*Archiver); ok {
		return a
	}
	return nil
}

// MustArchiverFromContext extracts the Archiver or panics
func MustArchiverFromContext(ctx context.Context) *Archiver {
	a := ArchiverFromContext(ctx)
	if a == nil {
		panic("buildkeep: Archiver not found in context")
	}
	return a
}

// WithListener adds a build log Listener to the context
func WithListener(ctx context.Context, l Listener) context.Context {
	return context.WithValue(ctx, listenerServiceKey, l)
}

// ListenerFromContext extracts the Listener from context.
// Returns nil if not set - callers should fall back to GetListener.
func ListenerFromContext(ctx context.Context) Listener {
	if l, ok := ctx.Value(listenerServiceKey).(Listener); ok {
		return l
	}
	return nil
}

// GetListener returns the Listener from context, or a default SlogListener.
// This is the preferred way for nodes to get a listener - it always returns
// a usable one.
func GetListener(ctx context.Context) Listener {
	if l := ListenerFromContext(ctx); l != nil {
		return l
	}
	return NewSlogListener(nil)
}

// WithHistory adds the build history to the context
func WithHistory(ctx context.Context, h History) context.Context {
	return context.WithValue(ctx, historyServiceKey, h)
}

// HistoryFromContext extracts the build history from context
func HistoryFromContext(ctx context.Context) History {
	if h, ok := ctx.Value(historyServiceKey).(History); ok {
		return h
	}
	return nil
}

// Services wraps the buildkeep services for convenient initialization
type Services struct {
	Archiver *Archiver
	Listener Listener        // Optional build log sink (defaults to slog)
	History  History         // Past builds, newest first
	Notifier notify.Notifier // Optional notification service
}

// InjectAll adds all configured services to the context
func (s *Services) InjectAll(ctx context.Context) context.Context {
	if s.Archiver != nil {
		ctx = WithArchiver(ctx, s.Archiver)
	}
	if s.Listener != nil {
		ctx = WithListener(ctx, s.Listener)
	}
	if s.History != nil {
		ctx = WithHistory(ctx, s.History)
	}
	if s.Notifier != nil {
		ctx = notify.WithNotifier(ctx, s.Notifier)
	}
	return ctx
}
