package format

import (
	"strings"
	"testing"
	"time"

	"alert_notification_service/internal/domain/alert"
)

func sampleAlert() *alert.Alert {
	return &alert.Alert{
		ID:         "a-1",
		Title:      "Bullish breakout on ACME",
		Message:    "Price broke above the 20-day resistance level.",
		Pattern:    "Ascending Triangle",
		Priority:   alert.PriorityHigh,
		Confidence: 87.4,
		Timestamp:  time.Date(2025, 6, 11, 14, 30, 0, 0, time.UTC),
		Metrics: &alert.Metrics{
			PriceChange: 2.5,
			Volatility:  1.234,
			Volume:      1200000,
		},
	}
}

func TestEmail_ContainsDetailBlocks(t *testing.T) {
	body := Email(sampleAlert())

	for _, want := range []string{
		"Bullish breakout on ACME",
		"Pattern Details:",
		"Type: Ascending Triangle",
		"Priority: HIGH",
		"Confidence: 87%",
		"Time: 2025-06-11 14:30:00",
		"Price Change: +2.50%",
		"Volatility: 1.23",
		"Volume: 1200000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("email body missing %q:\n%s", want, body)
		}
	}
}

func TestEmail_OmitsMissingOptionalFields(t *testing.T) {
	a := sampleAlert()
	a.Metrics = nil
	a.Message = ""
	body := Email(a)

	if strings.Contains(body, "Metrics:") {
		t.Error("email body should omit metrics block when metrics are absent")
	}
	if !strings.Contains(body, "Pattern Details:") {
		t.Error("pattern details block must always be present")
	}
}

func TestSMS_SingleLine(t *testing.T) {
	body := SMS(sampleAlert())

	if strings.Contains(body, "\n") {
		t.Errorf("sms body must be a single line: %q", body)
	}
	for _, want := range []string{"⚠️", "Bullish breakout on ACME", "+2.50%", "Ascending Triangle", "87%"} {
		if !strings.Contains(body, want) {
			t.Errorf("sms body missing %q: %q", want, body)
		}
	}
}

func TestSMS_PriorityGlyphs(t *testing.T) {
	a := sampleAlert()
	for priority, glyph := range map[alert.Priority]string{
		alert.PriorityCritical: "🚨",
		alert.PriorityHigh:     "⚠️",
		alert.PriorityMedium:   "📊",
		alert.PriorityLow:      "ℹ️",
	} {
		a.Priority = priority
		if body := SMS(a); !strings.HasPrefix(body, glyph) {
			t.Errorf("sms body for %s should start with %q: %q", priority, glyph, body)
		}
	}
}

func TestWhatsApp_LocalizedLabels(t *testing.T) {
	body := WhatsApp(sampleAlert(), "es")

	for _, want := range []string{
		"*Bullish breakout on ACME*",
		"📈 +2.50%",
		"*Patrón:* Ascending Triangle",
		"*Confianza:* 87%",
		"*Volatilidad:* 1.23",
		"*Volumen:* 1200000",
		"11 de junio de 2025, 14:30",
		"_Alerta de mercado automática_",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("whatsapp body missing %q:\n%s", want, body)
		}
	}
}

func TestTelegram_HTMLAndEscaping(t *testing.T) {
	a := sampleAlert()
	a.Title = "ACME <1% move>"
	body := Telegram(a, "en")

	if !strings.Contains(body, "<b>ACME &lt;1% move&gt;</b>") {
		t.Errorf("telegram body should escape HTML in the title:\n%s", body)
	}
	for _, want := range []string{
		"<b>Pattern:</b> Ascending Triangle",
		"<b>Confidence:</b> 87%",
		"June 11, 2025 at 14:30",
		"<i>Automated market alert</i>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("telegram body missing %q:\n%s", want, body)
		}
	}
}

func TestChat_UnsupportedLanguageFallsBack(t *testing.T) {
	got := WhatsApp(sampleAlert(), "xx")
	want := WhatsApp(sampleAlert(), "en")
	if got != want {
		t.Error("unsupported language should render identically to the base language")
	}
}

func TestChat_NegativePriceChangeGlyph(t *testing.T) {
	a := sampleAlert()
	a.Metrics.PriceChange = -3.1
	body := WhatsApp(a, "en")
	if !strings.Contains(body, "📉 -3.10%") {
		t.Errorf("whatsapp body should show downward glyph with signed change:\n%s", body)
	}
}
