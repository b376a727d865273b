package transport

import (
	"context"
	"fmt"

	"alert_notification_service/internal/domain/delivery"
	"alert_notification_service/internal/domain/transport"

	openai "github.com/sashabaranov/go-openai"
)

// SimulatedTransport fabricates deliveries by asking a text-generation model
// for a plausible provider confirmation payload. It exists so the full
// dispatch path can be exercised without provider credentials; production
// deployments swap in the real per-channel transports.
type SimulatedTransport struct {
	client  *openai.Client
	model   string
	channel delivery.Channel
}

func NewSimulatedTransport(apiKey string, channel delivery.Channel) *SimulatedTransport {
	return &SimulatedTransport{
		client:  openai.NewClient(apiKey),
		model:   openai.GPT4oMini,
		channel: channel,
	}
}

func (t *SimulatedTransport) Send(ctx context.Context, destination, body string, meta transport.Metadata) error {
	prompt := fmt.Sprintf(
		"Pretend you are a %s delivery provider. A message of %d characters was just sent to %q (alert %s, priority %s). "+
			"Respond with a one-line JSON delivery confirmation payload.",
		t.channel, len(body), destination, meta.AlertID, meta.Priority)

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return fmt.Errorf("simulated %s delivery failed: %w", t.channel, err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("simulated %s delivery returned no confirmation", t.channel)
	}
	return nil
}
