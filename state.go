package buildkeep

import (
	"fmt"
	"time"
)

// =============================================================================
// BuildState - Pipeline State
// =============================================================================

// BuildState is the state carried through an archiving pipeline. Nodes
// receive it by value and return an updated copy.
type BuildState struct {
	// Identification
	BuildID     string `json:"buildId"`
	DisplayName string `json:"displayName,omitempty"`

	// Build layout
	Workspace    string `json:"workspace,omitempty"`
	ArtifactsDir string `json:"artifactsDir,omitempty"`

	// Source revision the build was made from, if known. Used by the
	// commit status notifiers.
	Commit string `json:"commit,omitempty"`

	// Outcome of the build steps that ran before archiving. The archive
	// node may worsen it to FAILURE.
	Outcome Outcome `json:"outcome"`

	// Results of the archive nodes
	ArtifactCount int       `json:"artifactCount,omitempty"`
	ArchivedAt    time.Time `json:"archivedAt,omitempty"`
	SweptBuilds   int       `json:"sweptBuilds,omitempty"`
	Fingerprinted int       `json:"fingerprinted,omitempty"`

	// Error tracking
	Error string `json:"error,omitempty"`
}

// NewBuildState creates a pipeline state for a build.
func NewBuildState(buildID string) BuildState {
	return BuildState{
		BuildID: buildID,
		Outcome: Success,
	}
}

// WithWorkspace sets the workspace directory.
func (s BuildState) WithWorkspace(dir string) BuildState {
	s.Workspace = dir
	return s
}

// WithArtifactsDir sets the artifact destination directory.
func (s BuildState) WithArtifactsDir(dir string) BuildState {
	s.ArtifactsDir = dir
	return s
}

// WithCommit sets the source revision.
func (s BuildState) WithCommit(sha string) BuildState {
	s.Commit = sha
	return s
}

// WithOutcome sets the outcome of the preceding build steps.
func (s BuildState) WithOutcome(o Outcome) BuildState {
	s.Outcome = o
	return s
}

// Build converts the pipeline state into the archiver's build model.
func (s BuildState) Build() *Build {
	return &Build{
		ID:           s.BuildID,
		DisplayName:  s.DisplayName,
		Workspace:    s.Workspace,
		ArtifactsDir: s.ArtifactsDir,
		Result:       NewResult(s.Outcome),
	}
}

// Name returns the display name, falling back to the build ID.
func (s BuildState) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.BuildID
}

// SetError records a node error on the state.
func (s *BuildState) SetError(err error) {
	if err != nil {
		s.Error = err.Error()
	}
}

// HasError returns true if a node recorded an error.
func (s BuildState) HasError() bool {
	return s.Error != ""
}

// =============================================================================
// State Validation
// =============================================================================

// StateRequirement defines a state prerequisite for a node.
type StateRequirement string

const (
	RequireBuildID      StateRequirement = "buildId"
	RequireArtifactsDir StateRequirement = "artifactsDir"
)

// Validate checks that the state has the required fields.
func (s BuildState) Validate(requirements ...StateRequirement) error {
	for _, req := range requirements {
		switch req {
		case RequireBuildID:
			if s.BuildID == "" {
				return fmt.Errorf("build ID required")
			}
		case RequireArtifactsDir:
			if s.ArtifactsDir == "" {
				return fmt.Errorf("artifacts directory required")
			}
		default:
			return fmt.Errorf("unknown requirement: %s", req)
		}
	}
	return nil
}

// Summary returns a human-readable summary of the state.
func (s BuildState) Summary() string {
	status := "pending"
	switch {
	case s.Error != "":
		status = "failed"
	case !s.ArchivedAt.IsZero():
		status = "archived"
	}
	return fmt.Sprintf("Build %s [%s]: outcome=%s artifacts=%d",
		s.Name(), status, s.Outcome, s.ArtifactCount)
}
