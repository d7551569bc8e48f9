package buildkeep

// Result is a mutable handle on a build's outcome, shared between the build
// orchestrator and the archiving step. Callers should only ever worsen the
// outcome through Set; buildkeep follows that convention but does not
// enforce it.
type Result struct {
	outcome Outcome
}

// NewResult creates a result handle starting at the given outcome.
func NewResult(o Outcome) *Result {
	return &Result{outcome: o}
}

// Get returns the current outcome.
func (r *Result) Get() Outcome {
	return r.outcome
}

// Set replaces the current outcome.
func (r *Result) Set(o Outcome) {
	r.outcome = o
}

// Build describes one execution of a job as seen by the archiving step.
// The orchestrator owns the build lifecycle; buildkeep only reads these
// fields and deletes artifact directories during retention sweeps.
type Build struct {
	// ID identifies the build (e.g. "1842").
	ID string

	// DisplayName is a human-readable name used in log lines. Falls back
	// to ID when empty.
	DisplayName string

	// Workspace is the filesystem location of the build's working files.
	// Empty means the workspace is unavailable, typically because the
	// agent that ran the build is offline.
	Workspace string

	// ArtifactsDir is the persistent directory this build's artifacts are
	// archived into.
	ArtifactsDir string

	// Result is the build's mutable outcome handle.
	Result *Result
}

// Name returns the display name, falling back to the build ID.
func (b *Build) Name() string {
	if b.DisplayName != "" {
		return b.DisplayName
	}
	return b.ID
}

// WorkspaceAvailable reports whether the build's workspace can be read.
func (b *Build) WorkspaceAvailable() bool {
	return b.Workspace != ""
}

// History is an ordered snapshot of completed builds, newest first. It
// replaces a live previous-build chain: the orchestrator materializes the
// snapshot before the pre-build phase runs, so the walk never observes
// concurrent mutation.
type History []*Build
