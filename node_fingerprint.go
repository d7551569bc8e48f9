package buildkeep

import (
	"fmt"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	"github.com/randalmurphal/buildkeep/manifest"
)

// FingerprintNode writes a digest manifest over the archived artifacts.
//
// Prerequisites: ArchiveNode must have run
// Updates: state.Fingerprinted
//
// The node skips builds that archived nothing.
func FingerprintNode(ctx flowgraph.Context, state BuildState) (BuildState, error) {
	if state.ArtifactCount == 0 {
		return state, nil
	}

	m, err := manifest.Write(state.ArtifactsDir)
	if err != nil {
		return state, fmt.Errorf("fingerprint artifacts: %w", err)
	}

	state.Fingerprinted = len(m.Files)
	return state, nil
}
