package glob

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidateMask checks an include mask against a workspace root and returns a
// human-readable diagnostic for the first pattern that matches nothing. An
// empty string means every pattern has at least one match. The diagnostic
// tries to point at what the user probably meant, such as a pattern that
// would match with a leading "**/" or the deepest path prefix that exists.
func ValidateMask(root, mask string) (string, error) {
	if _, err := os.Stat(root); err != nil {
		return "", err
	}
	fsys := os.DirFS(root)

	for _, p := range Split(mask) {
		matches, err := doublestar.Glob(fsys, p)
		if err != nil {
			return "", fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		if len(matches) > 0 {
			continue
		}

		// Nothing matched. Would a deep version of the pattern match?
		if !strings.HasPrefix(p, "**/") {
			if deep, err := doublestar.Glob(fsys, "**/"+p); err == nil && len(deep) > 0 {
				return fmt.Sprintf("%q doesn't match anything, but %q does. Perhaps that's what you mean?", p, "**/"+p), nil
			}
		}

		// Report the deepest prefix of the pattern that does exist.
		segs := strings.Split(p, "/")
		for i := len(segs) - 1; i > 0; i-- {
			prefix := strings.Join(segs[:i], "/")
			if m, err := doublestar.Glob(fsys, prefix); err == nil && len(m) > 0 {
				return fmt.Sprintf("%q doesn't match anything: %q exists but not %q", p, prefix, p), nil
			}
		}
		return fmt.Sprintf("%q doesn't match anything in the workspace", p), nil
	}

	return "", nil
}
