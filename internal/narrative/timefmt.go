package narrative

import (
	"strings"
	"time"

	"github.com/mobil-koeln/flightframe/internal/models"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en-US"

const (
	layout12h = "03:04 PM"
	layout24h = "15:04"
)

// Locales that format times on a 24-hour clock
var locales24h = map[string]bool{
	"en-GB": true,
	"en-IE": true,
	"de-DE": true,
	"de-AT": true,
	"de-CH": true,
	"fr-FR": true,
	"fr-CA": true,
	"es-ES": true,
	"es-MX": true,
	"it-IT": true,
	"nl-NL": true,
	"pt-BR": true,
	"sv-SE": true,
	"ja-JP": true,
}

// TimeFormatter renders station-local times for a locale
type TimeFormatter struct {
	Locale string
}

// Layout returns the Go time layout for the formatter's locale
func (f TimeFormatter) Layout() string {
	if locales24h[canonicalLocale(f.Locale)] {
		return layout24h
	}
	return layout12h
}

// Format renders t on its own wall clock, two-digit hour and minute, with
// the hour's leading zero stripped ("09:05 AM" -> "9:05 AM").
func (f TimeFormatter) Format(t time.Time) string {
	return strings.TrimPrefix(t.Format(f.Layout()), "0")
}

// FormatISO parses an ISO-8601 timestamp with offset and formats it.
func (f TimeFormatter) FormatISO(iso string) (string, error) {
	t, err := models.ParseTimestamp(iso)
	if err != nil {
		return "", err
	}
	return f.Format(t), nil
}

// FormatLocalTime formats an ISO-8601 timestamp with the default locale.
func FormatLocalTime(iso string) (string, error) {
	return TimeFormatter{Locale: DefaultLocale}.FormatISO(iso)
}

// DateDifference returns the number of calendar days between the local
// departure date and the local arrival date. Each date is taken in the
// offset carried by its own timestamp.
func DateDifference(departureISO, arrivalISO string) (int, error) {
	dep, err := models.ParseTimestamp(departureISO)
	if err != nil {
		return 0, models.ErrTimestamp("departureTime", departureISO)
	}
	arr, err := models.ParseTimestamp(arrivalISO)
	if err != nil {
		return 0, models.ErrTimestamp("arrivalTime", arrivalISO)
	}
	return calendarDays(dep, arr), nil
}

func calendarDays(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func canonicalLocale(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	lang, region, ok := strings.Cut(locale, "-")
	if !ok {
		return strings.ToLower(lang)
	}
	return strings.ToLower(lang) + "-" + strings.ToUpper(region)
}
