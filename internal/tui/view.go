package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facetui/facet/internal/components"
	"github.com/facetui/facet/internal/dom"
)

const listWidth = 24

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderList(),
		previewStyle.Render(m.preview.View()),
	)
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("facet preview")
	status := statusStyle.Render(fmt.Sprintf("mode: %s  scale: %.2f", m.mode, m.scale))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", status)
}

func (m Model) renderList() string {
	var b strings.Builder
	for i := 0; i < m.itemCount(); i++ {
		label := m.labelAt(i)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + label))
		} else {
			b.WriteString(itemStyle.Render("  " + label))
		}
		b.WriteByte('\n')
	}
	return listStyle.Width(listWidth).Height(m.contentHeight()).Render(b.String())
}

func (m Model) labelAt(i int) string {
	if m.mode == ModeIcons {
		return m.icons[i].String()
	}
	return m.entries[i].String()
}

func (m Model) renderFooter() string {
	return footerStyle.Render("↑/↓ select · tab mode · +/- scale · q quit")
}

func (m Model) previewWidth() int {
	width := m.width - listWidth - 4
	if width < 10 {
		width = 10
	}
	return width
}

func (m Model) contentHeight() int {
	height := m.height - 4
	if height < 5 {
		height = 5
	}
	return height
}

// snippet renders the current selection through a fresh context so the
// emitted stylesheet contains only the rules the selection uses.
func (m Model) snippet() string {
	ctx := components.NewContext(components.Options{Scale: m.scale})

	var frag *dom.Fragment
	if m.mode == ModeIcons {
		frag = ctx.Icon(m.icons[m.cursor]).Title()
	} else {
		frag = ctx.Text("The quick brown fox").Preset(m.entries[m.cursor])
	}

	var b strings.Builder
	b.WriteString(frag.String())
	b.WriteString("\n\n/* stylesheet */\n")
	b.WriteString(ctx.StyleSheet().CSS())
	return b.String()
}
