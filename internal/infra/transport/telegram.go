package transport

import (
	"context"

	"alert_notification_service/internal/domain/transport"

	"gopkg.in/telebot.v3"
)

// TelebotTransport implements the Transport capability for the Telegram
// channel using the gopkg.in/telebot.v3 library.
type TelebotTransport struct {
	bot *telebot.Bot
}

func NewTelebotTransport(b *telebot.Bot) *TelebotTransport {
	return &TelebotTransport{bot: b}
}

// chatRecipient lets a raw destination string (numeric chat ID or @username)
// satisfy telebot's Recipient interface.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// Send delivers the already-formatted HTML body to the destination chat.
func (t *TelebotTransport) Send(_ context.Context, destination, body string, _ transport.Metadata) error {
	_, err := t.bot.Send(chatRecipient(destination), body, &telebot.SendOptions{ParseMode: telebot.ModeHTML})
	return err
}
