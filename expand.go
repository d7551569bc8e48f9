package buildkeep

import "os"

// Expander substitutes variable references in a pattern string before it is
// used for matching. The expansion source is external to this package; the
// build environment typically provides it.
type Expander interface {
	Expand(s string) string
}

// ExpanderFunc adapts a plain function to the Expander interface.
type ExpanderFunc func(string) string

// Expand implements Expander.
func (f ExpanderFunc) Expand(s string) string {
	return f(s)
}

// EnvExpander expands $VAR and ${VAR} references from the process
// environment. It is the default expander when none is configured.
var EnvExpander Expander = ExpanderFunc(os.ExpandEnv)

// MapExpander expands ${VAR} references from a fixed map, leaving unknown
// references empty. Useful when the build environment is captured up front.
func MapExpander(vars map[string]string) Expander {
	return ExpanderFunc(func(s string) string {
		return os.Expand(s, func(key string) string {
			return vars[key]
		})
	})
}
