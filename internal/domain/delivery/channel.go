package delivery

// Channel identifies one notification medium.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
)

// AllChannels lists every channel in dispatch order. The dispatcher iterates
// this slice so that log ordering is deterministic for a given alert.
var AllChannels = []Channel{ChannelEmail, ChannelSMS, ChannelWhatsApp, ChannelTelegram}
