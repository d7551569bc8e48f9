package buildkeep

import "os"

// PreBuild runs the latest-only retention sweep over the job's completed
// build history (newest first), deleting the artifact directories of builds
// made redundant by a newer build at the same or better outcome. It always
// returns true; deletion failures are logged and the sweep continues.
//
// Scanning newest to oldest, the first build at each new outcome high-water
// mark is kept; every build that is not a strict improvement over the best
// outcome seen so far loses its artifacts. The kept build's directory is
// never touched.
func (a *Archiver) PreBuild(history History, listener Listener) bool {
	a.sweep(history, listener)
	return true
}

func (a *Archiver) sweep(history History, listener Listener) int {
	if !a.Spec.LatestOnly {
		return 0
	}

	deleted := 0
	best := NotBuilt
	for _, b := range history {
		if b.Result.Get().BetterThan(best) {
			best = b.Result.Get()
			continue
		}

		if b.ArtifactsDir == "" {
			continue
		}
		if _, err := os.Stat(b.ArtifactsDir); err != nil {
			continue
		}

		listener.Infof("Deleting old artifacts of %s", b.Name())
		if err := a.remover()(b.ArtifactsDir); err != nil {
			listener.Errorf("delete artifacts of %s: %v", b.Name(), err)
			continue
		}
		deleted++
	}
	return deleted
}
