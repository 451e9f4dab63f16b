package narrative

import "strings"

// SpellStation spaces out a station code so screen readers pronounce each
// letter ("SEA" -> "S E A"). Works on runes, so any non-empty string is accepted.
func SpellStation(code string) string {
	runes := []rune(code)
	if len(runes) <= 1 {
		return code
	}

	var b strings.Builder
	b.Grow(len(code) * 2)
	for i, r := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
