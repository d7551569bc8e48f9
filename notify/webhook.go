package notify

import (
	"context"
	"fmt"

	httpclient "github.com/randalmurphal/buildkeep/http"
)

// WebhookNotifier sends events to a generic HTTP webhook as JSON.
type WebhookNotifier struct {
	URL     string
	Headers map[string]string

	// Tokens, when set, mints a bearer token per delivery and sends it in
	// the Authorization header.
	Tokens *TokenSource

	Client *httpclient.Client
}

// WebhookOption configures WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithWebhookHeaders sets extra headers sent with every delivery.
func WithWebhookHeaders(headers map[string]string) WebhookOption {
	return func(n *WebhookNotifier) { n.Headers = headers }
}

// WithWebhookTokens signs each delivery with a short-lived bearer token.
func WithWebhookTokens(tokens *TokenSource) WebhookOption {
	return func(n *WebhookNotifier) { n.Tokens = tokens }
}

// NewWebhookNotifier creates a webhook notifier.
func NewWebhookNotifier(url string, opts ...WebhookOption) *WebhookNotifier {
	n := &WebhookNotifier{
		URL:    url,
		Client: httpclient.NewClient(httpclient.ClientConfig{ServiceName: "webhook"}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify implements Notifier.
func (n *WebhookNotifier) Notify(ctx context.Context, event Event) error {
	headers := make(map[string]string, len(n.Headers)+1)
	for k, v := range n.Headers {
		headers[k] = v
	}

	if n.Tokens != nil {
		token, err := n.Tokens.Mint(event.BuildID)
		if err != nil {
			return fmt.Errorf("mint delivery token: %w", err)
		}
		headers["Authorization"] = "Bearer " + token
	}

	if err := n.Client.Post(ctx, n.URL, event, headers); err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	return nil
}
