package preferences

import "alert_notification_service/internal/domain/alert"

// ChannelPatch is a partial update for one channel. Nil fields leave the
// current value untouched; non-nil fields replace it wholesale.
type ChannelPatch struct {
	Enabled     *bool
	Destination *string
	Priorities  []alert.Priority // nil = untouched, empty = accept nothing
	Language    *string
}

// Patch is a partial update across channels. Channels absent from the patch
// (nil pointers) are untouched.
type Patch struct {
	Email    *ChannelPatch
	SMS      *ChannelPatch
	WhatsApp *ChannelPatch
	Telegram *ChannelPatch
}

// Apply merges the patch over the current preferences and returns the result.
// The receiver is not modified.
func (n NotificationPreferences) Apply(p Patch) NotificationPreferences {
	out := n.Clone()
	applyChannel(&out.Email, p.Email)
	applyChannel(&out.SMS, p.SMS)
	applyChannel(&out.WhatsApp, p.WhatsApp)
	applyChannel(&out.Telegram, p.Telegram)
	return out
}

func applyChannel(dst *ChannelPreference, patch *ChannelPatch) {
	if patch == nil {
		return
	}
	if patch.Enabled != nil {
		dst.Enabled = *patch.Enabled
	}
	if patch.Destination != nil {
		dst.Destination = *patch.Destination
	}
	if patch.Priorities != nil {
		set := make(map[alert.Priority]bool, len(patch.Priorities))
		for _, pr := range patch.Priorities {
			set[pr] = true
		}
		dst.Priorities = set
	}
	if patch.Language != nil {
		dst.Language = *patch.Language
	}
}
