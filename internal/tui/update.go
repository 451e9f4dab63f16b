package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.syncViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.syncViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.pane == paneFrame {
			m.pane = paneHTML
		} else {
			m.pane = paneFrame
		}
		return m, nil
	}

	// Remaining keys scroll the HTML pane
	if m.pane == paneHTML {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resizeViewport fits the HTML pane inside the right panel.
func (m *Model) resizeViewport() {
	_, rightWidth, panelHeight := m.layout()
	m.viewport.Width = rightWidth
	m.viewport.Height = panelHeight - 3 // title + border
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.syncViewport()
}
