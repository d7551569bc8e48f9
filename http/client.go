// Package http provides the retrying HTTP client used for webhook
// deliveries.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultMaxRetries is the default number of delivery attempts.
const DefaultMaxRetries = 3

// DefaultRetryWait is the default initial wait between retries.
const DefaultRetryWait = 1 * time.Second

// Client posts JSON payloads with bounded retries on transient failures.
type Client struct {
	client      *http.Client
	serviceName string
	maxRetries  int
	retryWait   time.Duration

	// beforeRequest is called before each attempt (for auth headers, etc.)
	beforeRequest func(req *http.Request)
}

// ClientConfig holds configuration for Client.
type ClientConfig struct {
	Client        *http.Client
	ServiceName   string
	MaxRetries    int
	RetryWait     time.Duration
	BeforeRequest func(req *http.Request)
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		client:        cfg.Client,
		serviceName:   cfg.ServiceName,
		maxRetries:    cfg.MaxRetries,
		retryWait:     cfg.RetryWait,
		beforeRequest: cfg.BeforeRequest,
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	if c.serviceName == "" {
		c.serviceName = "webhook"
	}
	if c.maxRetries <= 0 {
		c.maxRetries = DefaultMaxRetries
	}
	if c.retryWait <= 0 {
		c.retryWait = DefaultRetryWait
	}

	return c
}

// Post delivers body as JSON to url, retrying on network errors, rate
// limits, and server errors. A non-2xx final response is an error.
func (c *Client) Post(ctx context.Context, url string, body any, headers map[string]string) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", c.serviceName, err)
	}

	var lastErr error
	for attempt := range c.maxRetries {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		if c.beforeRequest != nil {
			c.beforeRequest(req)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%s request failed: %w", c.serviceName, err)
			if attempt < c.maxRetries-1 {
				if err := c.wait(ctx, c.retryWait*time.Duration(1<<attempt)); err != nil {
					return err
				}
				continue
			}
			return lastErr
		}

		if shouldRetry(resp.StatusCode) && attempt < c.maxRetries-1 {
			wait := c.retryWaitFor(resp, attempt)
			resp.Body.Close()
			lastErr = &APIError{Service: c.serviceName, StatusCode: resp.StatusCode}
			if err := c.wait(ctx, wait); err != nil {
				return err
			}
			continue
		}

		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return &APIError{Service: c.serviceName, StatusCode: resp.StatusCode}
		}
		return nil
	}

	return lastErr
}

func (c *Client) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// retryWaitFor calculates the wait before the next attempt, honoring a
// Retry-After header when present.
func (c *Client) retryWaitFor(resp *http.Response, attempt int) time.Duration {
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return c.retryWait * time.Duration(1<<attempt)
}

// shouldRetry reports whether a status code signals a transient failure.
func shouldRetry(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
