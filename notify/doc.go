// Package notify delivers archive lifecycle events to external sinks.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: Archive event with type, build, message, and metadata
//
// Implementations:
//   - LogNotifier: Logs events via slog (for testing/debugging)
//   - WebhookNotifier: JSON POST with optional signed bearer tokens
//   - SlackNotifier: Slack incoming webhooks
//   - GitHubStatusNotifier: Commit statuses on GitHub
//   - GitLabStatusNotifier: Commit statuses on GitLab
//   - MultiNotifier: Fan-out to several notifiers
//   - NopNotifier: Discards everything
//
// Notifier failures never fail the archiving step; callers log and move on.
package notify
