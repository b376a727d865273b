package format

import (
	"fmt"
	"time"
)

// labelSet holds the literal label strings for one display language used by
// the chat-channel bodies.
type labelSet struct {
	Pattern    string
	Confidence string
	Volatility string
	Volume     string
	Footer     string
	months     [12]string
	stamp      func(t time.Time, month string) string
}

// Base language is English; unsupported codes fall back to it rather than
// erroring.
const baseLanguage = "en"

var labelSets = map[string]labelSet{
	"en": {
		Pattern:    "Pattern",
		Confidence: "Confidence",
		Volatility: "Volatility",
		Volume:     "Volume",
		Footer:     "Automated market alert",
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		stamp: func(t time.Time, month string) string {
			return fmt.Sprintf("%s %d, %d at %02d:%02d", month, t.Day(), t.Year(), t.Hour(), t.Minute())
		},
	},
	"es": {
		Pattern:    "Patrón",
		Confidence: "Confianza",
		Volatility: "Volatilidad",
		Volume:     "Volumen",
		Footer:     "Alerta de mercado automática",
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		stamp: func(t time.Time, month string) string {
			return fmt.Sprintf("%d de %s de %d, %02d:%02d", t.Day(), month, t.Year(), t.Hour(), t.Minute())
		},
	},
	"pt": {
		Pattern:    "Padrão",
		Confidence: "Confiança",
		Volatility: "Volatilidade",
		Volume:     "Volume",
		Footer:     "Alerta de mercado automático",
		months: [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		stamp: func(t time.Time, month string) string {
			return fmt.Sprintf("%d de %s de %d, %02d:%02d", t.Day(), month, t.Year(), t.Hour(), t.Minute())
		},
	},
}

func labelsFor(lang string) labelSet {
	if ls, ok := labelSets[lang]; ok {
		return ls
	}
	return labelSets[baseLanguage]
}

// localizedTimestamp renders t in the given language's conventions.
func localizedTimestamp(t time.Time, lang string) string {
	ls := labelsFor(lang)
	return ls.stamp(t, ls.months[t.Month()-1])
}
