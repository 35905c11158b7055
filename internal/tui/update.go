package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minScale  = 0.5
	maxScale  = 4.0
	scaleStep = 0.25
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = m.previewWidth()
		m.preview.Height = m.contentHeight()
		m.ready = true
		m.preview.SetContent(m.snippet())
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case "tab":
		if m.mode == ModeText {
			m.mode = ModeIcons
		} else {
			m.mode = ModeText
		}
		m.cursor = 0

	case "+", "=":
		if m.scale+scaleStep <= maxScale {
			m.scale += scaleStep
		}

	case "-":
		if m.scale-scaleStep >= minScale {
			m.scale -= scaleStep
		}

	default:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	m.preview.SetContent(m.snippet())
	m.preview.GotoTop()
	return m, nil
}
