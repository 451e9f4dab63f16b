package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/flightframe/internal/frame"
	"github.com/mobil-koeln/flightframe/internal/models"
)

type pane int

const (
	paneFrame pane = iota
	paneHTML
)

// entry is one itinerary together with its rendered view.
// err is set instead of view when the itinerary is invalid.
type entry struct {
	itinerary models.Itinerary
	view      *frame.View
	markup    string
	err       error
}

// Model is the root Bubble Tea model for the previewer.
type Model struct {
	source string
	width  int
	height int

	entries []entry
	cursor  int
	pane    pane

	keys     keyMap
	help     help.Model
	viewport viewport.Model
}

// New renders every itinerary once and returns the previewer model.
// source names where the itineraries came from (shown in the header).
func New(itineraries []models.Itinerary, opts frame.Options, source string) Model {
	entries := make([]entry, 0, len(itineraries))
	for i := range itineraries {
		entries = append(entries, renderEntry(itineraries[i], opts))
	}

	m := Model{
		source:   source,
		entries:  entries,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
	}
	m.syncViewport()
	return m
}

func renderEntry(it models.Itinerary, opts frame.Options) entry {
	e := entry{itinerary: it}

	v, err := frame.Render(&e.itinerary, opts)
	if err != nil {
		e.err = err
		return e
	}
	markup, err := v.HTML()
	if err != nil {
		e.err = err
		return e
	}

	e.view = v
	e.markup = markup
	return e
}

// selected returns the entry under the cursor, or nil when the list is empty.
func (m Model) selected() *entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

// syncViewport loads the selected entry's markup into the HTML pane.
func (m *Model) syncViewport() {
	content := ""
	if e := m.selected(); e != nil {
		if e.err != nil {
			content = "Error: " + e.err.Error()
		} else {
			content = e.markup
		}
	}
	if m.viewport.Width > 0 {
		content = lipgloss.NewStyle().Width(m.viewport.Width).Render(content)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}
