package notify

import (
	"context"
	"time"
)

// EventType represents the type of archive lifecycle event.
type EventType string

// Event type constants.
const (
	EventArtifactsArchived EventType = "artifacts_archived"
	EventArtifactsMissing  EventType = "artifacts_missing"
	EventArchiveFailed     EventType = "archive_failed"
	EventRetentionSwept    EventType = "retention_swept"
)

// Severity constants for events.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Event describes an archive lifecycle event for notification.
type Event struct {
	Type          EventType      `json:"type"`
	Job           string         `json:"job,omitempty"`
	BuildID       string         `json:"build_id"`
	Message       string         `json:"message"`
	Severity      string         `json:"severity"` // SeverityInfo, SeverityWarning, SeverityError
	Outcome       string         `json:"outcome,omitempty"`
	ArtifactCount int            `json:"artifact_count,omitempty"`
	Commit        string         `json:"commit,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Notifier sends notifications about archive events.
type Notifier interface {
	// Notify sends a notification. Implementations should handle errors
	// gracefully; a failed notification must never fail the build step.
	Notify(ctx context.Context, event Event) error
}

// =============================================================================
// Context Injection
// =============================================================================

type serviceContextKey string

const notifierServiceKey serviceContextKey = "buildkeep.notifier"

// WithNotifier adds a Notifier to the context.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierServiceKey, n)
}

// NotifierFromContext extracts the Notifier from context.
// Returns nil if no notifier is configured.
func NotifierFromContext(ctx context.Context) Notifier {
	if n, ok := ctx.Value(notifierServiceKey).(Notifier); ok {
		return n
	}
	return nil
}
