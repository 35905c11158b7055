package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := sized(NewModel(1))
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCursorNavigationClamps(t *testing.T) {
	t.Parallel()

	m := sized(NewModel(1))

	updated, _ := m.Update(keyMsg("k"))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor, "cursor stays at the top")

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	for i := 0; i < 50; i++ {
		updated, _ = m.Update(keyMsg("j"))
		m = updated.(Model)
	}
	assert.Equal(t, m.itemCount()-1, m.cursor, "cursor stays within bounds")
}

func TestTabTogglesModeAndResetsCursor(t *testing.T) {
	t.Parallel()

	m := sized(NewModel(1))
	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	assert.Equal(t, ModeIcons, m.mode)
	assert.Equal(t, 0, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, ModeText, m.mode)
}

func TestScaleAdjustmentClamps(t *testing.T) {
	t.Parallel()

	m := sized(NewModel(1))

	updated, _ := m.Update(keyMsg("+"))
	m = updated.(Model)
	assert.Equal(t, 1.25, m.Scale())

	for i := 0; i < 50; i++ {
		updated, _ = m.Update(keyMsg("-"))
		m = updated.(Model)
	}
	assert.Equal(t, minScale, m.Scale())

	for i := 0; i < 50; i++ {
		updated, _ = m.Update(keyMsg("+"))
		m = updated.(Model)
	}
	assert.Equal(t, maxScale, m.Scale())
}

func TestNewModelNormalizesScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, NewModel(0).Scale())
	assert.Equal(t, 1.0, NewModel(-3).Scale())
	assert.Equal(t, 2.0, NewModel(2).Scale())
}
