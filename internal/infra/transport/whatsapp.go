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

// WhatsAppTransport sends chat messages through a WhatsApp Business API
// endpoint.
type WhatsAppTransport struct {
	apiURL string
	token  string
	client *http.Client
}

func NewWhatsAppTransport(apiURL, token string) *WhatsAppTransport {
	return &WhatsAppTransport{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (t *WhatsAppTransport) Send(ctx context.Context, destination, body string, _ transport.Metadata) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                destination,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("creating whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp API returned status %d", resp.StatusCode)
	}
	return nil
}
