package format

import (
	"fmt"
	"time"
)

type Locale string

const (
	LocaleES Locale = "es-ES"
	LocaleEN Locale = "en-US"
)

var shortMonths = map[Locale][12]string{
	LocaleES: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	LocaleEN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// FormatDate renders t with a short month, a two digit day and the full
// year, ordered the way the locale writes dates. Unknown locales fall back
// to es-ES.
//
//	es-ES: 05 ene 2024
//	en-US: Jan 05, 2024
func FormatDate(t time.Time, locale Locale) string {
	months, ok := shortMonths[locale]
	if !ok {
		locale = LocaleES
		months = shortMonths[locale]
	}
	month := months[t.Month()-1]

	if locale == LocaleEN {
		return fmt.Sprintf("%s %02d, %d", month, t.Day(), t.Year())
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), month, t.Year())
}
