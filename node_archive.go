package buildkeep

import (
	"time"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"
)

// ArchiveNode copies the build's matching workspace files into its artifact
// directory.
//
// Prerequisites: state.BuildID and state.ArtifactsDir set; an Archiver in
// context
// Updates: state.ArtifactCount, state.ArchivedAt, and state.Outcome when the
// archive policy worsens the build result
//
// Archiving problems are a build result, not a pipeline error: a missing
// workspace, zero matches, or copy failures are reported through the
// listener and reflected in state.Outcome, and the node still succeeds.
func ArchiveNode(ctx flowgraph.Context, state BuildState) (BuildState, error) {
	if err := state.Validate(RequireBuildID, RequireArtifactsDir); err != nil {
		return state, err
	}

	archiver := MustArchiverFromContext(ctx)
	listener := GetListener(ctx)

	build := state.Build()
	result := archiver.archive(build, listener)

	state.ArtifactCount = result.FilesCopied
	state.Outcome = build.Result.Get()
	state.ArchivedAt = time.Now()
	return state, nil
}
