package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/bullet/internal/outline"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	return v
}

// renderContent produces the string content for the view: the visible slice
// of the outline, a separator, and the status bar.
func (m Model) renderContent() string {
	if m.width == 0 || m.quitting {
		return ""
	}

	contentH := m.height - statusRows
	if contentH < 0 {
		contentH = 0
	}
	start, length := outline.Window(m.doc.Len(), contentH, m.cur.Row)

	var b strings.Builder
	for vi := 0; vi < contentH; vi++ {
		if vi < length {
			m.renderOutlineRow(&b, start+vi)
		} else {
			b.WriteString(m.styles.BgFill.Render(strings.Repeat(" ", m.width)))
		}
		b.WriteByte('\n')
	}

	m.renderStatusBar(&b)
	return b.String()
}

// renderOutlineRow writes one outline line in its display form, with the
// caret rendered on the cursor row, truncated and padded to the full width.
func (m Model) renderOutlineRow(b *strings.Builder, row int) {
	display := m.doc.Display(row)

	var rendered string
	if row == m.cur.Row {
		rendered = m.renderCursorLine(display)
	} else {
		rendered = m.styles.Text.Render(display)
	}

	rw := lipgloss.Width(rendered)
	if rw > m.width {
		rendered = ansi.Truncate(rendered, m.width, "")
		rw = lipgloss.Width(rendered)
	}
	b.WriteString(rendered)
	if rw < m.width {
		b.WriteString(m.styles.BgFill.Render(strings.Repeat(" ", m.width-rw)))
	}
}

// renderCursorLine renders the cursor row with the caret visible. The display
// form swaps exactly one rune for the glyph, so the raw-text cursor column
// lines up with the display column.
func (m Model) renderCursorLine(display string) string {
	runes := []rune(display)

	col := m.cur.Col
	if col > len(runes) {
		col = len(runes)
	}

	before := string(runes[:col])
	after := ""
	caretChar := " "
	if col < len(runes) {
		caretChar = string(runes[col])
		after = string(runes[col+1:])
	}

	m.caret.SetChar(caretChar)
	m.caret.TextStyle = m.styles.Text
	return m.styles.Text.Render(before) + m.caret.View() + m.styles.Text.Render(after)
}
