package buildkeep

import (
	"os"

	"github.com/randalmurphal/buildkeep/glob"
)

// ArchiveSpec is the immutable archiving configuration of a job. It is
// bound once from the job's configuration payload and read-only afterwards.
type ArchiveSpec struct {
	// Include is a comma- or space-separated list of Ant-style patterns
	// selecting the workspace files to archive. Required.
	Include string `yaml:"include"`

	// Exclude is an optional pattern list; a file matching any exclude
	// pattern is never archived, even when an include pattern matches it.
	Exclude string `yaml:"exclude,omitempty"`

	// LatestOnly keeps only the newest build's artifacts at each outcome
	// high-water mark, deleting older artifact sets during the pre-build
	// retention sweep.
	LatestOnly bool `yaml:"latest_only,omitempty"`

	// AllowEmpty downgrades the "no artifacts matched" error to a warning
	// and leaves the build outcome untouched.
	AllowEmpty bool `yaml:"allow_empty,omitempty"`
}

// CopyResult reports what a single archive pass copied.
type CopyResult struct {
	FilesCopied int
}

// MaskValidator produces a diagnostic for an include mask that matched
// nothing in the workspace, or an empty string when it has nothing useful
// to say.
type MaskValidator func(workspace, mask string) (string, error)

// Archiver copies build artifacts from a workspace into the build's
// persistent artifacts directory, and sweeps old artifact directories when
// latest-only retention is enabled. Neither operation ever fails the
// pipeline: every failure path ends in a log line and, at worst, a worsened
// build outcome.
type Archiver struct {
	// Spec is the archiving configuration.
	Spec ArchiveSpec

	// Expander rewrites variable references in the include pattern before
	// matching. Defaults to EnvExpander.
	Expander Expander

	// Validator enriches the zero-match diagnostic. Defaults to
	// glob.ValidateMask.
	Validator MaskValidator

	// Remover deletes an artifact directory during the retention sweep.
	// Defaults to os.RemoveAll.
	Remover func(path string) error
}

// NewArchiver creates an archiver for the given spec with default
// collaborators.
func NewArchiver(spec ArchiveSpec) *Archiver {
	return &Archiver{Spec: spec}
}

func (a *Archiver) expander() Expander {
	if a.Expander != nil {
		return a.Expander
	}
	return EnvExpander
}

func (a *Archiver) validator() MaskValidator {
	if a.Validator != nil {
		return a.Validator
	}
	return glob.ValidateMask
}

func (a *Archiver) remover() func(string) error {
	if a.Remover != nil {
		return a.Remover
	}
	return os.RemoveAll
}

// warnOrError emits a zero-match diagnostic at the severity implied by
// AllowEmpty: a warning when empty archives are tolerated, an error
// otherwise.
func (a *Archiver) warnOrError(listener Listener, format string, args ...any) {
	if a.Spec.AllowEmpty {
		listener.Infof("WARN: "+format, args...)
	} else {
		listener.Errorf(format, args...)
	}
}

// Archive copies the files matching the include patterns from the build's workspace
// into its artifacts directory. It always returns true: the build pipeline
// continues regardless of what happened here. The build outcome is set to
// Failure when the include pattern is empty, or when nothing matched and
// empty archives are not allowed.
func (a *Archiver) Archive(build *Build, listener Listener) bool {
	a.archive(build, listener)
	return true
}

func (a *Archiver) archive(build *Build, listener Listener) CopyResult {
	if a.Spec.Include == "" {
		listener.Errorf("%v", ErrNoIncludes)
		build.Result.Set(Failure)
		return CopyResult{}
	}

	if err := os.MkdirAll(build.ArtifactsDir, 0o755); err != nil {
		listener.Errorf("create artifacts directory %s: %v", build.ArtifactsDir, err)
		return CopyResult{}
	}

	listener.Infof("Archiving artifacts")

	if !build.WorkspaceAvailable() {
		// Agent offline. An expected transient condition, not an error;
		// skip silently so the real build state stays visible.
		return CopyResult{}
	}

	include := a.expander().Expand(a.Spec.Include)

	n, err := glob.Copy(build.Workspace, include, a.Spec.Exclude, build.ArtifactsDir)
	if err != nil {
		listener.Errorf("%v", err)
		listener.Errorf("failed to archive artifacts: %s", include)
		return CopyResult{FilesCopied: n}
	}

	if n == 0 {
		if build.Result.Get().BetterOrEqual(Unstable) {
			// If the build already failed, it probably never got to the
			// point of producing artifacts, so don't pile on.
			a.warnOrError(listener, "no artifacts found that match the file pattern %q", include)
			msg, verr := a.validator()(build.Workspace, include)
			if verr != nil {
				a.warnOrError(listener, "%v", verr)
			}
			if msg != "" {
				a.warnOrError(listener, "%s", msg)
			}
		}
		if !a.Spec.AllowEmpty {
			build.Result.Set(Failure)
		}
	}

	return CopyResult{FilesCopied: n}
}
