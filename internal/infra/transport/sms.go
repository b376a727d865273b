package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"alert_notification_service/internal/domain/transport"
)

// HTTPSMSTransport sends short messages through a JSON-over-HTTP SMS
// gateway.
type HTTPSMSTransport struct {
	gatewayURL string
	apiKey     string
	from       string
	client     *http.Client
}

func NewHTTPSMSTransport(gatewayURL, apiKey, from string) *HTTPSMSTransport {
	return &HTTPSMSTransport{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		from:       from,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts the message to the gateway. Any non-2xx response is a failure.
func (t *HTTPSMSTransport) Send(ctx context.Context, destination, body string, meta transport.Metadata) error {
	payload := map[string]any{
		"from":      t.from,
		"to":        destination,
		"body":      body,
		"reference": meta.AlertID,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.gatewayURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("creating sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
