package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facetui/facet/internal/assets"
	"github.com/facetui/facet/internal/components"
)

// Mode selects which collection the browser lists.
type Mode int

const (
	ModeText Mode = iota
	ModeIcons
)

func (m Mode) String() string {
	if m == ModeIcons {
		return "icons"
	}
	return "text"
}

// Model is the preview browser: a list of scale entries (or icons) on the
// left and the rendered HTML snippet for the selection on the right.
type Model struct {
	mode   Mode
	cursor int
	scale  float64

	entries []components.ScaleEntry
	icons   []assets.Icon

	preview viewport.Model
	width   int
	height  int
	ready   bool
}

// NewModel creates a preview model with the given scale factor.
func NewModel(scale float64) Model {
	if scale <= 0 {
		scale = 1.0
	}
	return Model{
		scale:   scale,
		entries: components.ScaleEntries(),
		icons:   assets.Icons(),
		preview: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Scale returns the current preview scale factor.
func (m Model) Scale() float64 {
	return m.scale
}

func (m Model) itemCount() int {
	if m.mode == ModeIcons {
		return len(m.icons)
	}
	return len(m.entries)
}

func (m Model) selectionLabel() string {
	if m.mode == ModeIcons {
		return m.icons[m.cursor].String()
	}
	return m.entries[m.cursor].String()
}
