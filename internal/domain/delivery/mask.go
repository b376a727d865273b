package delivery

import "strings"

// MaskDestination obfuscates a destination for display in the delivery log.
// Cosmetic only: this is not a security boundary and must never be used as
// access control.
func MaskDestination(ch Channel, dest string) string {
	switch ch {
	case ChannelEmail:
		return maskEmail(dest)
	case ChannelSMS, ChannelWhatsApp:
		return maskPhone(dest)
	case ChannelTelegram:
		return maskHandle(dest)
	default:
		return maskHandle(dest)
	}
}

func maskEmail(addr string) string {
	at := strings.Index(addr, "@")
	if at <= 0 {
		return "***"
	}
	return addr[:1] + "***" + addr[at:]
}

func maskPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) <= 4 {
		return "***"
	}
	return strings.Repeat("*", len(d)-4) + d[len(d)-4:]
}

func maskHandle(handle string) string {
	h := strings.TrimPrefix(handle, "@")
	if len(h) <= 2 {
		return "@***"
	}
	return "@" + h[:2] + "***"
}
