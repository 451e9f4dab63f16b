package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different parts of a frame
type Colors struct {
	Time      func(format string, a ...interface{}) string
	Station   func(format string, a ...interface{}) string
	Rerouted  func(format string, a ...interface{}) string
	DayOffset func(format string, a ...interface{}) string
	Flight    func(format string, a ...interface{}) string
	Stop      func(format string, a ...interface{}) string
	Error     func(format string, a ...interface{}) string
	Header    func(format string, a ...interface{}) string
	Muted     func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		// Without strike-through, mark rerouted stations with tildes
		struck := func(format string, a ...interface{}) string {
			return "~" + noColor(format, a...) + "~"
		}
		return &Colors{
			Time:      noColor,
			Station:   noColor,
			Rerouted:  struck,
			DayOffset: noColor,
			Flight:    noColor,
			Stop:      noColor,
			Error:     noColor,
			Header:    noColor,
			Muted:     noColor,
		}
	}

	return &Colors{
		Time:      color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Station:   color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Rerouted:  color.New(color.FgRed, color.CrossedOut).SprintfFunc(),
		DayOffset: color.New(color.FgYellow).SprintfFunc(),
		Flight:    color.New(color.FgMagenta, color.Bold).SprintfFunc(),
		Stop:      color.New(color.FgYellow).SprintfFunc(),
		Error:     color.New(color.FgRed, color.Bold).SprintfFunc(),
		Header:    color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:     color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatDayOffset formats the arrival day offset (fixed 3-char width)
func (c *Colors) FormatDayOffset(days int) string {
	if days <= 0 {
		return "   "
	}
	return c.DayOffset("%-3s", fmt.Sprintf("+%d", days))
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
