package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/bullet/internal/storage"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		if mdl, cmd, handled := m.handleKeyPress(msg); handled {
			return mdl, cmd
		}
		// Text input falls through the dispatch table.
		if msg.Text != "" {
			for _, r := range msg.Text {
				m.doc.InsertRune(&m.cur, r)
			}
			mdl, cmd := m.afterEdit()
			return mdl, cmd
		}
		return m, nil
	}

	// Tick spinner and caret blink.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	cmds = append(cmds, cmd)
	m.caret, cmd = m.caret.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// afterEdit runs after every mutating operation: refresh the unsaved-change
// counts and, in eager mode, persist immediately.
func (m *Model) afterEdit() (Model, tea.Cmd) {
	if m.eager {
		m.persistNow()
	} else {
		m.changes = diffCounts(m.lastSaved, m.doc.Serialize())
	}
	return *m, m.caret.Blink()
}

// afterMove runs after cursor movement; no document state changed.
func (m *Model) afterMove() (Model, tea.Cmd) {
	return *m, m.caret.Blink()
}

// persistNow writes the document to disk and records a revision. On failure
// the in-memory document is kept and the error is surfaced in the status bar
// so the user can retry (ctrl+s) after fixing the external cause.
func (m *Model) persistNow() {
	text := m.doc.Serialize()
	if err := storage.Persist(m.docPath, text); err != nil {
		log.Warn().Err(err).Str("doc", m.docPath).Msg("persist failed")
		m.saveErr = err.Error()
		m.changes = diffCounts(m.lastSaved, text)
		return
	}
	m.saveErr = ""
	m.lastSaved = text
	m.changes = changeCounts{}
	m.journal.Record(m.docPath, text)
}
