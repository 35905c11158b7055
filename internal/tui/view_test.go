package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewBeforeSizingShowsPlaceholder(t *testing.T) {
	t.Parallel()

	assert.Contains(t, NewModel(1).View(), "Initializing")
}

func TestViewListsScaleEntries(t *testing.T) {
	t.Parallel()

	m := sized(NewModel(1))
	view := m.View()

	assert.Contains(t, view, "large-title")
	assert.Contains(t, view, "caption2")
	assert.Contains(t, view, "facet preview")
}

func TestViewListsIconsAfterTab(t *testing.T) {
	t.Parallel()

	m := sized(NewModel(1))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	view := updated.(Model).View()

	assert.Contains(t, view, "trash")
	assert.Contains(t, view, "plus")
}

func TestSnippetRendersSelection(t *testing.T) {
	t.Parallel()

	m := sized(NewModel(1))
	snippet := m.snippet()

	require.Contains(t, snippet, "font-size: 34px", "first entry is large-title")
	assert.Contains(t, snippet, "/* stylesheet */")

	m.mode = ModeIcons
	m.cursor = 0
	snippet = m.snippet()
	assert.Contains(t, snippet, "svg")
}
