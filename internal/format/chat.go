package format

import (
	"fmt"
	"strings"

	"alert_notification_service/internal/domain/alert"
)

// WhatsApp renders the markdown-style rich body for the WhatsApp channel in
// the selected language. Unsupported language codes fall back to English.
func WhatsApp(a *alert.Alert, lang string) string {
	ls := labelsFor(lang)
	var sb strings.Builder
	sb.WriteString("*" + a.Title + "*\n")
	writeDirection(&sb, a)
	if a.Message != "" {
		sb.WriteString("\n" + a.Message + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("*%s:* %s\n", ls.Pattern, a.Pattern))
	sb.WriteString(fmt.Sprintf("*%s:* %.0f%%\n", ls.Confidence, a.Confidence))
	if m := a.Metrics; m != nil {
		sb.WriteString(fmt.Sprintf("*%s:* %.2f\n", ls.Volatility, m.Volatility))
		if m.Volume > 0 {
			sb.WriteString(fmt.Sprintf("*%s:* %d\n", ls.Volume, m.Volume))
		}
	}
	sb.WriteString("\n🕐 " + localizedTimestamp(a.Timestamp, lang) + "\n")
	sb.WriteString("_" + ls.Footer + "_")
	return sb.String()
}

// Telegram renders the HTML-style structured body for the Telegram channel
// in the selected language.
func Telegram(a *alert.Alert, lang string) string {
	ls := labelsFor(lang)
	var sb strings.Builder
	sb.WriteString("<b>" + escapeHTML(a.Title) + "</b>\n")
	writeDirection(&sb, a)
	if a.Message != "" {
		sb.WriteString("\n" + escapeHTML(a.Message) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("<b>%s:</b> %s\n", ls.Pattern, escapeHTML(a.Pattern)))
	sb.WriteString(fmt.Sprintf("<b>%s:</b> %.0f%%\n", ls.Confidence, a.Confidence))
	if m := a.Metrics; m != nil {
		sb.WriteString(fmt.Sprintf("<b>%s:</b> %.2f\n", ls.Volatility, m.Volatility))
		if m.Volume > 0 {
			sb.WriteString(fmt.Sprintf("<b>%s:</b> %d\n", ls.Volume, m.Volume))
		}
	}
	sb.WriteString("\n🕐 " + localizedTimestamp(a.Timestamp, lang) + "\n")
	sb.WriteString("<i>" + escapeHTML(ls.Footer) + "</i>")
	return sb.String()
}

// writeDirection appends the signed price change with its directional glyph,
// when metrics are present.
func writeDirection(sb *strings.Builder, a *alert.Alert) {
	if a.Metrics == nil {
		return
	}
	glyph := "📈"
	if a.Metrics.PriceChange < 0 {
		glyph = "📉"
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", glyph, signedPercent(a.Metrics.PriceChange)))
}

// escapeHTML escapes the characters Telegram's HTML parse mode treats as
// markup.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
