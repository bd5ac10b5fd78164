package tui

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// renderStatusBar writes the separator row and the status bar.
func (m Model) renderStatusBar(b *strings.Builder) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	// -- Left segments: document path, dirty marker, unsaved-change counts --
	name := m.docPath
	if m.changes.any() {
		name += "*"
	}
	left := m.styles.StatusText.Render(" " + name)
	if m.changes.any() {
		counts := strings.Join([]string{
			m.styles.StatusAdd.Render("+" + strconv.Itoa(m.changes.added)),
			m.styles.StatusMod.Render("~" + strconv.Itoa(m.changes.modified)),
			m.styles.StatusDel.Render("-" + strconv.Itoa(m.changes.removed)),
		}, m.styles.StatusText.Render(" "))
		left = strings.Join([]string{left, counts}, m.styles.StatusText.Render(" "))
	}

	// -- Right segments: persist error, autosave mode, pending-write spinner --
	var rightParts []string

	if m.saveErr != "" {
		errText := m.saveErr
		if len(errText) > 30 {
			errText = errText[:30] + "…"
		}
		rightParts = append(rightParts, m.styles.Error.Render("✗ "+errText))
	}

	mode := "eager"
	if !m.eager {
		mode = "deferred"
	}
	rightParts = append(rightParts, m.styles.StatusText.Render(mode))

	if m.changes.any() {
		rightParts = append(rightParts, strings.TrimSpace(m.spin.View()))
	}

	right := strings.Join(rightParts, m.styles.StatusText.Render(" "))

	// -- Compose: left + gap + right + trailing space --
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		gap = 0
	}
	b.WriteString(left)
	b.WriteString(m.styles.BgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(m.styles.BgFill.Render(" "))
}
