package buildkeep_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/buildkeep"
	"github.com/randalmurphal/buildkeep/testutil"
)

// historyOf builds a newest-first history with one artifact file per build.
func historyOf(t *testing.T, outcomes ...buildkeep.Outcome) buildkeep.History {
	t.Helper()

	root := t.TempDir()
	history := make(buildkeep.History, 0, len(outcomes))
	for i, o := range outcomes {
		dir := filepath.Join(root, "builds", string(rune('a'+i)), "archive")
		testutil.WriteTree(t, dir, map[string]string{"artifact.bin": "data"})
		history = append(history, &buildkeep.Build{
			ID:           testutil.NewBuildID(t),
			ArtifactsDir: dir,
			Result:       buildkeep.NewResult(o),
		})
	}
	return history
}

func artifactsExist(b *buildkeep.Build) bool {
	_, err := os.Stat(b.ArtifactsDir)
	return err == nil
}

func TestPreBuild_KeepsFirstBuildAtEachHighWaterMark(t *testing.T) {
	history := historyOf(t,
		buildkeep.Success,  // newest: new high-water mark, kept
		buildkeep.Failure,  // not better than Success, deleted
		buildkeep.Success,  // equal is not strictly better, deleted
		buildkeep.Unstable, // not better than Success, deleted
	)

	archiver := buildkeep.NewArchiver(buildkeep.ArchiveSpec{Include: "**", LatestOnly: true})
	listener := &testutil.RecordingListener{}
	if !archiver.PreBuild(history, listener) {
		t.Fatal("PreBuild must always return true")
	}

	wantKept := []bool{true, false, false, false}
	for i, b := range history {
		if got := artifactsExist(b); got != wantKept[i] {
			t.Errorf("build %d (outcome %v): artifacts exist = %v, want %v",
				i, b.Result.Get(), got, wantKept[i])
		}
	}

	if len(listener.Infos) != 3 {
		t.Errorf("expected 3 deletion log lines, got %v", listener.Infos)
	}
}

func TestPreBuild_RisingHighWaterMarksArePreserved(t *testing.T) {
	history := historyOf(t,
		buildkeep.Failure,  // newest: better than NotBuilt, kept
		buildkeep.Unstable, // better than Failure, kept
		buildkeep.Success,  // better than Unstable, kept
		buildkeep.Success,  // equal, deleted
	)

	archiver := buildkeep.NewArchiver(buildkeep.ArchiveSpec{Include: "**", LatestOnly: true})
	archiver.PreBuild(history, &testutil.RecordingListener{})

	wantKept := []bool{true, true, true, false}
	for i, b := range history {
		if got := artifactsExist(b); got != wantKept[i] {
			t.Errorf("build %d (outcome %v): artifacts exist = %v, want %v",
				i, b.Result.Get(), got, wantKept[i])
		}
	}
}

func TestPreBuild_DisabledWithoutLatestOnly(t *testing.T) {
	history := historyOf(t, buildkeep.Success, buildkeep.Failure, buildkeep.Failure)

	archiver := buildkeep.NewArchiver(buildkeep.ArchiveSpec{Include: "**"})
	listener := &testutil.RecordingListener{}
	archiver.PreBuild(history, listener)

	for i, b := range history {
		if !artifactsExist(b) {
			t.Errorf("build %d artifacts deleted despite latest-only being off", i)
		}
	}
	if len(listener.Infos)+len(listener.Errors) != 0 {
		t.Errorf("expected no log output, got infos=%v errors=%v", listener.Infos, listener.Errors)
	}
}

func TestPreBuild_MissingArtifactDirsAreSkippedSilently(t *testing.T) {
	history := historyOf(t, buildkeep.Success, buildkeep.Failure)
	if err := os.RemoveAll(history[1].ArtifactsDir); err != nil {
		t.Fatalf("remove: %v", err)
	}

	archiver := buildkeep.NewArchiver(buildkeep.ArchiveSpec{Include: "**", LatestOnly: true})
	listener := &testutil.RecordingListener{}
	archiver.PreBuild(history, listener)

	if len(listener.Infos) != 0 {
		t.Errorf("no deletion should be logged for an absent directory, got %v", listener.Infos)
	}
	if len(listener.Errors) != 0 {
		t.Errorf("no error expected, got %v", listener.Errors)
	}
}

func TestPreBuild_EmptyHistory(t *testing.T) {
	archiver := buildkeep.NewArchiver(buildkeep.ArchiveSpec{Include: "**", LatestOnly: true})
	if !archiver.PreBuild(nil, &testutil.RecordingListener{}) {
		t.Fatal("PreBuild must always return true")
	}
}

func TestPreBuild_DeletionErrorIsLoggedAndSweepContinues(t *testing.T) {
	history := historyOf(t,
		buildkeep.Success, // newest: kept
		buildkeep.Failure, // deletion fails
		buildkeep.Failure, // must still be swept
	)

	archiver := buildkeep.NewArchiver(buildkeep.ArchiveSpec{Include: "**", LatestOnly: true})
	archiver.Remover = func(path string) error {
		if path == history[1].ArtifactsDir {
			return errors.New("device busy")
		}
		return os.RemoveAll(path)
	}

	listener := &testutil.RecordingListener{}
	if !archiver.PreBuild(history, listener) {
		t.Fatal("PreBuild must always return true")
	}

	if !listener.HasError("device busy") {
		t.Errorf("deletion failure should be logged, got %v", listener.Errors)
	}
	if !artifactsExist(history[1]) {
		t.Error("artifacts of the failed deletion should remain on disk")
	}
	if artifactsExist(history[2]) {
		t.Error("sweep should continue past a deletion failure")
	}
}
