package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleKeyPress processes key events. Returns (model, cmd, true) if handled.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	handler := m.keyPressHandlers()[msg.Keystroke()]
	if handler == nil {
		return Model{}, nil, false
	}
	mdl, cmd := handler(m)
	return mdl, cmd, true
}

func (m *Model) keyPressHandlers() map[string]func(*Model) (Model, tea.Cmd) {
	return map[string]func(*Model) (Model, tea.Cmd){
		"ctrl+c": (*Model).handleQuit,
		"ctrl+q": (*Model).handleQuit,
		"ctrl+s": (*Model).handleSave,

		"up":    (*Model).handleUp,
		"down":  (*Model).handleDown,
		"left":  (*Model).handleLeft,
		"right": (*Model).handleRight,

		"tab":       (*Model).handleIndent,
		"shift+tab": (*Model).handleDedent,
		"enter":     (*Model).handleNewLine,
		"ctrl+d":    (*Model).handleDeleteLine,
		"backspace": (*Model).handleBackspace,
	}
}

// handleQuit flushes the document, then quits. Eager mode has already
// persisted every step, but one final flush covers a persist that previously
// failed and was never retried. When the flush itself fails the session stays
// open with the error in the status bar, so the buffer is never discarded
// while its content exists nowhere else.
func (m *Model) handleQuit() (Model, tea.Cmd) {
	m.persistNow()
	if m.saveErr != "" {
		return *m, nil
	}
	m.quitting = true
	return *m, tea.Quit
}

func (m *Model) handleSave() (Model, tea.Cmd) {
	m.persistNow()
	return *m, nil
}

func (m *Model) handleUp() (Model, tea.Cmd) {
	m.cur.MoveUp(m.doc, 1)
	return m.afterMove()
}

func (m *Model) handleDown() (Model, tea.Cmd) {
	m.cur.MoveDown(m.doc, 1)
	return m.afterMove()
}

func (m *Model) handleLeft() (Model, tea.Cmd) {
	m.cur.MoveLeft(m.doc, 1)
	return m.afterMove()
}

func (m *Model) handleRight() (Model, tea.Cmd) {
	m.cur.MoveRight(m.doc, 1)
	return m.afterMove()
}

func (m *Model) handleIndent() (Model, tea.Cmd) {
	m.doc.Indent(&m.cur)
	return m.afterEdit()
}

func (m *Model) handleDedent() (Model, tea.Cmd) {
	m.doc.Dedent(&m.cur)
	return m.afterEdit()
}

func (m *Model) handleNewLine() (Model, tea.Cmd) {
	m.doc.InsertLineBelow(&m.cur)
	return m.afterEdit()
}

func (m *Model) handleDeleteLine() (Model, tea.Cmd) {
	m.doc.DeleteLine(&m.cur)
	return m.afterEdit()
}

func (m *Model) handleBackspace() (Model, tea.Cmd) {
	m.doc.DeleteRune(&m.cur)
	return m.afterEdit()
}
