package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const defaultRetryAfter = 5 * time.Second

// TooManyRequestsError represents rate limiting signal from the webhook receiver.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// WebhookNotifier posts status changes as JSON to an HTTP endpoint.
type WebhookNotifier struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookNotifier creates a webhook notifier with default timeout.
func NewWebhookNotifier(endpoint string, logger *slog.Logger) (*WebhookNotifier, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	return &WebhookNotifier{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// NotifyStatusChange delivers change, retrying once when rate limited.
func (n *WebhookNotifier) NotifyStatusChange(ctx context.Context, change model.StatusChange) error {
	body, err := encodeEvent(change)
	if err != nil {
		return err
	}

	err = n.post(ctx, body)
	limited, ok := err.(TooManyRequestsError)
	if !ok {
		return err
	}
	n.logger.Warn("webhook rate limited", slog.Duration("retry_after", limited.RetryAfter))

	timer := time.NewTimer(limited.RetryAfter)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	return n.post(ctx, body)
}

// Close releases idle connections.
func (n *WebhookNotifier) Close() error {
	n.httpClient.CloseIdleConnections()
	return nil
}

func (n *WebhookNotifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		n.logger.Error("webhook request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return fmt.Errorf("webhook error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return defaultRetryAfter
}
