package config

import (
	"strings"
	"testing"

	"github.com/randalmurphal/buildkeep/notify"
)

func TestBuildNotifier_Empty(t *testing.T) {
	n, err := BuildNotifier(Notify{})
	if err != nil {
		t.Fatalf("BuildNotifier: %v", err)
	}
	if _, ok := n.(notify.NopNotifier); !ok {
		t.Errorf("got %T, want NopNotifier", n)
	}
}

func TestBuildNotifier_Single(t *testing.T) {
	n, err := BuildNotifier(Notify{SlackWebhookURL: "https://hooks.slack.com/services/T/B/X"})
	if err != nil {
		t.Fatalf("BuildNotifier: %v", err)
	}
	if _, ok := n.(*notify.SlackNotifier); !ok {
		t.Errorf("got %T, want *SlackNotifier", n)
	}
}

func TestBuildNotifier_FansOut(t *testing.T) {
	cfg := Notify{
		WebhookURL:      "https://ci.example.com/hook",
		WebhookSecret:   strings.Repeat("s", 32),
		SlackWebhookURL: "https://hooks.slack.com/services/T/B/X",
	}

	n, err := BuildNotifier(cfg)
	if err != nil {
		t.Fatalf("BuildNotifier: %v", err)
	}

	multi, ok := n.(*notify.MultiNotifier)
	if !ok {
		t.Fatalf("got %T, want *MultiNotifier", n)
	}
	if len(multi.Notifiers) != 2 {
		t.Errorf("notifiers = %d, want 2", len(multi.Notifiers))
	}
}

func TestBuildNotifier_GitHubRequiresRepo(t *testing.T) {
	cfg := Notify{GitHub: GitHubStatus{Token: "tok"}}
	if _, err := BuildNotifier(cfg); err == nil {
		t.Error("expected error for GitHub token without owner/repo")
	}
}
