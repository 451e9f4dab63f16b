package narrative

import "testing"

func TestSpellStation(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"SEA", "S E A"},
		{"PDX", "P D X"},
		{"X", "X"},
		{"", ""},
		{"EGLL", "E G L L"},
		{"ÅRH", "Å R H"},
	}

	for _, tt := range tests {
		if got := SpellStation(tt.code); got != tt.want {
			t.Errorf("SpellStation(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestSpellStation_SingleSpaces(t *testing.T) {
	got := SpellStation("LAX")
	for i := 1; i < len(got); i += 2 {
		if got[i] != ' ' {
			t.Fatalf("SpellStation(LAX) = %q, expected a space at %d", got, i)
		}
	}
}
