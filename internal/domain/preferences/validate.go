package preferences

import (
	"regexp"
	"strings"
)

// Validation predicates for channel destinations. These are advisory: the
// preference store itself never rejects data, callers are expected to check
// before enabling a channel.

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{5,32}$`)
	nonDigit      = regexp.MustCompile(`\D`)
)

// ValidEmail reports whether addr has the standard local@domain shape.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// ValidPhone reports whether phone contains 10 to 15 digits after stripping
// every non-digit character (spaces, dashes, leading +).
func ValidPhone(phone string) bool {
	digits := nonDigit.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// ValidHandle reports whether handle is a messaging username: 5 to 32
// characters, alphanumeric plus underscore. A leading @ is stripped before
// checking.
func ValidHandle(handle string) bool {
	return handlePattern.MatchString(strings.TrimPrefix(handle, "@"))
}
