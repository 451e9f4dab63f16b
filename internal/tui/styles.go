package tui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes, kept in step with the fatih/color choices in
// output.NewColors so `show` and the previewer look alike.
var (
	ansiRed     = lipgloss.Color("1")
	ansiYellow  = lipgloss.Color("3")
	ansiMagenta = lipgloss.Color("5")
	ansiCyan    = lipgloss.Color("6")
	ansiGray    = lipgloss.Color("8")
	ansiWhite   = lipgloss.Color("15")
)

// Frame parts
var (
	styleTime      = lipgloss.NewStyle().Foreground(ansiWhite).Bold(true)
	styleStation   = lipgloss.NewStyle().Foreground(ansiCyan).Bold(true)
	styleRerouted  = lipgloss.NewStyle().Foreground(ansiRed).Strikethrough(true)
	styleDayOffset = lipgloss.NewStyle().Foreground(ansiYellow)
	styleStop      = styleDayOffset
	styleFlight    = lipgloss.NewStyle().Foreground(ansiMagenta).Bold(true)
	styleNarrative = lipgloss.NewStyle().Foreground(ansiWhite).Italic(true)
)

// Chrome around the frame
var (
	styleHeader    = lipgloss.NewStyle().Foreground(ansiWhite).Bold(true)
	styleMuted     = lipgloss.NewStyle().Foreground(ansiGray)
	styleError     = lipgloss.NewStyle().Foreground(ansiRed)
	styleSelected  = lipgloss.NewStyle().Foreground(ansiCyan).Bold(true)
	styleStatusBar = styleMuted.Background(lipgloss.Color("0"))

	// The preview pane carries the accent border; the itinerary list stays gray.
	stylePanelFocused = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ansiCyan)
	stylePanelNormal  = stylePanelFocused.BorderForeground(ansiGray)
)
