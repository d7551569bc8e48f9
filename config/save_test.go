package config

import (
	"path/filepath"
	"testing"

	"github.com/randalmurphal/buildkeep"
)

func TestSave_RoundTrip(t *testing.T) {
	cfg := &Config{
		Archive: buildkeep.ArchiveSpec{
			Include:    "dist/**",
			Exclude:    "dist/*.tmp",
			LatestOnly: true,
		},
		Notify: Notify{
			SlackWebhookURL: "https://hooks.slack.com/services/T/B/X",
			SlackChannel:    "#builds",
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Archive.Include != cfg.Archive.Include {
		t.Errorf("Include = %q, want %q", loaded.Archive.Include, cfg.Archive.Include)
	}
	if !loaded.Archive.LatestOnly {
		t.Error("LatestOnly should survive the round trip")
	}
	if loaded.Notify.SlackChannel != "#builds" {
		t.Errorf("SlackChannel = %q", loaded.Notify.SlackChannel)
	}
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	cfg := &Config{} // no include pattern

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, cfg); err == nil {
		t.Error("expected validation error for empty include pattern")
	}
}
