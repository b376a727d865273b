package preferences

import (
	"alert_notification_service/internal/domain/alert"
	"alert_notification_service/internal/domain/delivery"
)

// ChannelPreference holds the per-channel delivery settings.
// Language is only meaningful for the whatsapp and telegram channels; the
// other channels ignore it.
type ChannelPreference struct {
	Enabled     bool
	Destination string // address / phone / username, format not validated here
	Priorities  map[alert.Priority]bool
	Language    string
}

// Accepts reports whether this channel fires for the given alert priority.
func (p ChannelPreference) Accepts(pr alert.Priority) bool {
	return p.Priorities[pr]
}

// NotificationPreferences is one record per channel. Lifetime is the process
// lifetime of the owning service; channels are disabled, never deleted.
type NotificationPreferences struct {
	Email    ChannelPreference
	SMS      ChannelPreference
	WhatsApp ChannelPreference
	Telegram ChannelPreference
}

// Channel returns the preference record for the given channel.
func (n NotificationPreferences) Channel(ch delivery.Channel) ChannelPreference {
	switch ch {
	case delivery.ChannelEmail:
		return n.Email
	case delivery.ChannelSMS:
		return n.SMS
	case delivery.ChannelWhatsApp:
		return n.WhatsApp
	case delivery.ChannelTelegram:
		return n.Telegram
	default:
		return ChannelPreference{}
	}
}

// Clone returns an independent deep copy, so snapshots handed to callers and
// subscribers cannot alias the store's state.
func (n NotificationPreferences) Clone() NotificationPreferences {
	out := n
	out.Email.Priorities = clonePriorities(n.Email.Priorities)
	out.SMS.Priorities = clonePriorities(n.SMS.Priorities)
	out.WhatsApp.Priorities = clonePriorities(n.WhatsApp.Priorities)
	out.Telegram.Priorities = clonePriorities(n.Telegram.Priorities)
	return out
}

func clonePriorities(in map[alert.Priority]bool) map[alert.Priority]bool {
	if in == nil {
		return nil
	}
	out := make(map[alert.Priority]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Default returns the initial preference set: everything disabled, all
// priorities accepted once a channel is switched on, base language for the
// chat channels.
func Default() NotificationPreferences {
	all := func() map[alert.Priority]bool {
		return map[alert.Priority]bool{
			alert.PriorityCritical: true,
			alert.PriorityHigh:     true,
			alert.PriorityMedium:   true,
			alert.PriorityLow:      true,
		}
	}
	return NotificationPreferences{
		Email:    ChannelPreference{Priorities: all()},
		SMS:      ChannelPreference{Priorities: all()},
		WhatsApp: ChannelPreference{Priorities: all(), Language: "en"},
		Telegram: ChannelPreference{Priorities: all(), Language: "en"},
	}
}
