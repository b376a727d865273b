// Package format renders channel-appropriate message bodies from alert
// events. All functions are pure; a malformed alert degrades to omitting the
// missing optional fields rather than erroring.
package format

import (
	"fmt"
	"strings"

	"alert_notification_service/internal/domain/alert"
)

// Email renders a multi-line plain-text body for the mail channel.
func Email(a *alert.Alert) string {
	var sb strings.Builder
	sb.WriteString(a.Title)
	sb.WriteString("\n\n")
	if a.Message != "" {
		sb.WriteString(a.Message)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Pattern Details:\n")
	sb.WriteString(fmt.Sprintf("  Type: %s\n", a.Pattern))
	sb.WriteString(fmt.Sprintf("  Priority: %s\n", strings.ToUpper(string(a.Priority))))
	sb.WriteString(fmt.Sprintf("  Confidence: %.0f%%\n", a.Confidence))
	sb.WriteString(fmt.Sprintf("  Time: %s\n", a.Timestamp.Format("2006-01-02 15:04:05")))

	if m := a.Metrics; m != nil {
		sb.WriteString("\nMetrics:\n")
		sb.WriteString(fmt.Sprintf("  Price Change: %s\n", signedPercent(m.PriceChange)))
		sb.WriteString(fmt.Sprintf("  Volatility: %.2f\n", m.Volatility))
		if m.Volume > 0 {
			sb.WriteString(fmt.Sprintf("  Volume: %d\n", m.Volume))
		}
	}
	return sb.String()
}

// signedPercent formats a percent value with an explicit sign.
func signedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}
