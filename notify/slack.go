package notify

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	httpclient "github.com/randalmurphal/buildkeep/http"
)

// SlackNotifier sends events to a Slack incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	Channel    string
	Username   string
	Client     *httpclient.Client
}

// SlackOption configures SlackNotifier.
type SlackOption func(*SlackNotifier)

// WithSlackChannel sets the channel to post to.
func WithSlackChannel(channel string) SlackOption {
	return func(n *SlackNotifier) { n.Channel = channel }
}

// WithSlackUsername sets the bot username.
func WithSlackUsername(username string) SlackOption {
	return func(n *SlackNotifier) { n.Username = username }
}

// NewSlackNotifier creates a Slack webhook notifier.
func NewSlackNotifier(webhookURL string, opts ...SlackOption) *SlackNotifier {
	n := &SlackNotifier{
		WebhookURL: webhookURL,
		Username:   "buildkeep",
		Client:     httpclient.NewClient(httpclient.ClientConfig{ServiceName: "slack"}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type slackPayload struct {
	Channel     string            `json:"channel,omitempty"`
	Username    string            `json:"username,omitempty"`
	Attachments []slackAttachment `json:"attachments"`
}

type slackAttachment struct {
	Color     string `json:"color,omitempty"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Footer    string `json:"footer,omitempty"`
	Timestamp int64  `json:"ts,omitempty"`
}

var titleCaser = cases.Title(language.English)

// eventTitle renders an event type like "artifacts_archived" as
// "Artifacts Archived".
func eventTitle(t EventType) string {
	return titleCaser.String(strings.ReplaceAll(string(t), "_", " "))
}

// Notify implements Notifier.
func (n *SlackNotifier) Notify(ctx context.Context, event Event) error {
	payload := slackPayload{
		Username: n.Username,
		Attachments: []slackAttachment{
			{
				Color:     colorForSeverity(event.Severity),
				Title:     eventTitle(event.Type),
				Text:      event.Message,
				Footer:    fmt.Sprintf("Build: %s | Outcome: %s", event.BuildID, event.Outcome),
				Timestamp: event.Timestamp.Unix(),
			},
		},
	}
	if n.Channel != "" {
		payload.Channel = n.Channel
	}

	if err := n.Client.Post(ctx, n.WebhookURL, payload, nil); err != nil {
		return fmt.Errorf("send slack message: %w", err)
	}
	return nil
}

func colorForSeverity(severity string) string {
	switch severity {
	case SeverityError:
		return "danger"
	case SeverityWarning:
		return "warning"
	default:
		return "good"
	}
}
