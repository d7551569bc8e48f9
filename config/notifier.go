package config

import (
	"github.com/randalmurphal/buildkeep/notify"
)

// BuildNotifier constructs the notifier fan-out described by the Notify
// section. Returns NopNotifier when nothing is configured, so the result
// is always usable.
func BuildNotifier(cfg Notify) (notify.Notifier, error) {
	var notifiers []notify.Notifier

	if cfg.WebhookURL != "" {
		var opts []notify.WebhookOption
		if cfg.WebhookSecret != "" {
			opts = append(opts, notify.WithWebhookTokens(&notify.TokenSource{
				Secret: []byte(cfg.WebhookSecret),
				Issuer: "buildkeep",
			}))
		}
		notifiers = append(notifiers, notify.NewWebhookNotifier(cfg.WebhookURL, opts...))
	}

	if cfg.SlackWebhookURL != "" {
		var opts []notify.SlackOption
		if cfg.SlackChannel != "" {
			opts = append(opts, notify.WithSlackChannel(cfg.SlackChannel))
		}
		notifiers = append(notifiers, notify.NewSlackNotifier(cfg.SlackWebhookURL, opts...))
	}

	if cfg.GitHub.Token != "" {
		n, err := notify.NewGitHubStatusNotifier(cfg.GitHub.Token, cfg.GitHub.Owner, cfg.GitHub.Repo)
		if err != nil {
			return nil, err
		}
		if cfg.GitHub.Context != "" {
			n.WithContext(cfg.GitHub.Context)
		}
		notifiers = append(notifiers, n)
	}

	if cfg.GitLab.Token != "" {
		n, err := notify.NewGitLabStatusNotifier(cfg.GitLab.Token, cfg.GitLab.Project, cfg.GitLab.BaseURL)
		if err != nil {
			return nil, err
		}
		if cfg.GitLab.Name != "" {
			n.WithName(cfg.GitLab.Name)
		}
		notifiers = append(notifiers, n)
	}

	switch len(notifiers) {
	case 0:
		return notify.NopNotifier{}, nil
	case 1:
		return notifiers[0], nil
	default:
		return notify.NewMultiNotifier(notifiers...), nil
	}
}
