package notify

import (
	"context"
	"fmt"
	"time"

	"HistVol/internal/domain/models"
	xhttp "HistVol/pkg/http"
	"HistVol/pkg/logger"
)

// WebhookNotifier posts computed volatility estimates to an external webhook.
// A nil notifier (empty URL) is valid and silently drops notifications.
type WebhookNotifier struct {
	url    string
	client *xhttp.Client
	logger *logger.Logger
}

func NewWebhookNotifier(url string, lgr *logger.Logger) *WebhookNotifier {
	if url == "" {
		return nil
	}
	return &WebhookNotifier{
		url:    url,
		client: xhttp.NewClient(xhttp.WithTimeout(5 * time.Second)),
		logger: lgr,
	}
}

// NotifyEstimate posts the estimate as JSON. Retries transient failures with a
// short linear backoff.
func (n *WebhookNotifier) NotifyEstimate(ctx context.Context, est models.VolEstimate) error {
	if n == nil {
		return nil
	}
	var err error
	for i := 1; i <= 3; i++ {
		err = n.post(ctx, est)
		if err == nil {
			return nil
		}
		select {
		case <-time.After(time.Duration(i) * 50 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	n.logger.Warn("webhook notify failed",
		logger.String("symbol", est.Symbol),
		logger.Error(err))
	return err
}

func (n *WebhookNotifier) post(ctx context.Context, payload interface{}) error {
	err := n.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    n.url,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: payload,
	}, nil)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	return nil
}
