package testutil

import (
	"fmt"
	"strings"
)

// RecordingListener captures build log lines for test assertions, keeping
// the info and error channels separate.
type RecordingListener struct {
	Infos  []string
	Errors []string
}

// Infof records an info line.
func (l *RecordingListener) Infof(format string, args ...any) {
	l.Infos = append(l.Infos, fmt.Sprintf(format, args...))
}

// Errorf records an error line.
func (l *RecordingListener) Errorf(format string, args ...any) {
	l.Errors = append(l.Errors, fmt.Sprintf(format, args...))
}

// Warnings returns the info lines carrying the "WARN: " prefix.
func (l *RecordingListener) Warnings() []string {
	var warnings []string
	for _, line := range l.Infos {
		if strings.HasPrefix(line, "WARN: ") {
			warnings = append(warnings, line)
		}
	}
	return warnings
}

// HasInfo reports whether any info line contains substr.
func (l *RecordingListener) HasInfo(substr string) bool {
	return containsLine(l.Infos, substr)
}

// HasError reports whether any error line contains substr.
func (l *RecordingListener) HasError(substr string) bool {
	return containsLine(l.Errors, substr)
}

func containsLine(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
