package glob

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Split breaks a comma- or whitespace-separated pattern string into
// individual patterns. Empty entries are dropped.
func Split(pattern string) []string {
	fields := strings.FieldsFunc(pattern, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	patterns := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			patterns = append(patterns, normalize(f))
		}
	}
	return patterns
}

// normalize converts a pattern to slash form and applies the Ant rule that
// a trailing separator means "everything below this directory".
func normalize(pattern string) string {
	pattern = strings.ReplaceAll(pattern, `\`, "/")
	if strings.HasSuffix(pattern, "/") {
		pattern += "**"
	}
	return pattern
}

// CheckPatterns reports the first malformed pattern in a pattern string.
func CheckPatterns(pattern string) error {
	for _, p := range Split(pattern) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// Match reports whether the slash-separated relative path matches at least
// one of the patterns.
func Match(patterns []string, relpath string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, relpath)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
