package buildkeep

import (
	"fmt"
	"log/slog"
)

// Listener receives build log lines on two channels: ordinary progress
// output and errors. Warnings are info lines carrying a "WARN: " prefix;
// the archiver decides severity, not the listener.
type Listener interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// SlogListener adapts a slog.Logger to the Listener interface.
type SlogListener struct {
	Logger *slog.Logger
}

// NewSlogListener creates a listener backed by the given logger.
// If logger is nil, the default slog logger is used.
func NewSlogListener(logger *slog.Logger) *SlogListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogListener{Logger: logger}
}

// Infof implements Listener.
func (l *SlogListener) Infof(format string, args ...any) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

// Errorf implements Listener.
func (l *SlogListener) Errorf(format string, args ...any) {
	l.Logger.Error(fmt.Sprintf(format, args...))
}
