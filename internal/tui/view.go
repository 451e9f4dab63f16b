package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/flightframe/internal/models"
	"github.com/mobil-koeln/flightframe/internal/output"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	statusBar := m.renderStatusBar()

	leftWidth, rightWidth, panelHeight := m.layout()

	leftPanel := stylePanelNormal.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(m.renderList(leftWidth, panelHeight-2))

	rightPanel := stylePanelFocused.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(m.renderDetail(rightWidth))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)
}

// layout splits the screen: ~30% list, ~70% detail.
func (m Model) layout() (leftWidth, rightWidth, panelHeight int) {
	panelHeight = m.height - 2 // header + status bar
	if panelHeight < 3 {
		panelHeight = 3
	}

	leftWidth = m.width*30/100 - 2 // subtract border
	if leftWidth < 20 {
		leftWidth = 20
	}
	rightWidth = m.width - leftWidth - 4
	if rightWidth < 20 {
		rightWidth = 20
	}
	return leftWidth, rightWidth, panelHeight
}

func (m Model) renderHeader() string {
	title := styleHeader.Render("flightframe")
	if m.source != "" {
		title += styleMuted.Render("  " + m.source)
	}
	return title
}

func (m Model) renderStatusBar() string {
	status := fmt.Sprintf(" %d itineraries  %s", len(m.entries), m.help.ShortHelpView(m.keys.ShortHelp()))
	return styleStatusBar.Width(m.width).Render(status)
}

// renderList renders the itinerary list with the cursor marker.
func (m Model) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("ITINERARIES"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(styleMuted.Render(" No itineraries"))
		return b.String()
	}

	maxVisible := height - 1
	if maxVisible < 1 {
		maxVisible = 1
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := start; i < end; i++ {
		e := m.entries[i]
		label := fmt.Sprintf("%s-%s %s", e.itinerary.DepartureStation, e.itinerary.ArrivalStation, strings.Join(e.itinerary.Flights, ","))
		if len(label) > width-2 && width > 5 {
			label = label[:width-5] + "..."
		}

		switch {
		case i == m.cursor:
			b.WriteString(styleSelected.Render("> " + label))
		case e.err != nil:
			b.WriteString(styleError.Render("! " + label))
		default:
			b.WriteString("  " + label)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderDetail renders the selected itinerary as a frame or as markup.
func (m Model) renderDetail(width int) string {
	e := m.selected()
	if e == nil {
		return styleMuted.Render(" Nothing to preview")
	}

	if m.pane == paneHTML {
		return styleHeader.Render("HTML") + "\n" + m.viewport.View()
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render("FRAME"))
	b.WriteString("\n")

	if e.err != nil {
		b.WriteString(styleError.Render(" Error: " + e.err.Error()))
		return b.String()
	}

	it := &e.itinerary
	v := e.view

	b.WriteString(styleFlight.Render(it.FlightLabel()))
	if d := output.FormatDuration(it.Duration); d != "" {
		b.WriteString("  " + styleMuted.Render(d))
	}
	b.WriteString("\n\n")

	reroute := it.Reroute()
	var reroutedDep, reroutedArr string
	if reroute != nil {
		reroutedDep, reroutedArr = reroute.DepartureStation, reroute.ArrivalStation
	}

	b.WriteString(styleMuted.Render("┌ "))
	b.WriteString(styleTime.Render(fmt.Sprintf("%8s", v.DepartureTime)))
	b.WriteString("      ")
	b.WriteString(stationLabel(it.DepartureStation, reroutedDep))
	b.WriteString("\n")

	for _, stop := range it.Stops {
		b.WriteString(styleMuted.Render("├ "))
		b.WriteString(strings.Repeat(" ", 14))
		b.WriteString(styleStop.Render(describeStop(stop)))
		b.WriteString("\n")
	}

	b.WriteString(styleMuted.Render("└ "))
	b.WriteString(styleTime.Render(fmt.Sprintf("%8s", v.ArrivalTime)))
	offset := "   "
	if v.DayOffset > 0 {
		offset = styleDayOffset.Render(fmt.Sprintf("%-3s", fmt.Sprintf("+%d", v.DayOffset)))
	}
	b.WriteString(" " + offset + "  ")
	b.WriteString(stationLabel(it.ArrivalStation, reroutedArr))
	b.WriteString("\n\n")

	b.WriteString(styleMuted.Render("Screen reader:"))
	b.WriteString("\n")
	b.WriteString(styleNarrative.Width(width).Render(v.Narrative))

	return b.String()
}

func stationLabel(station, rerouted string) string {
	if rerouted == "" {
		return styleStation.Render(station)
	}
	return styleRerouted.Render(rerouted) + " " + styleStation.Render(station)
}

func describeStop(s models.Stop) string {
	if s.IsStopover {
		return "stop in " + s.ArrivalStation
	}
	if s.Duration != "" {
		return "layover in " + s.ArrivalStation + ", " + s.Duration
	}
	return "layover in " + s.ArrivalStation
}
