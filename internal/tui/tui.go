// Package tui implements the interactive outline editing session as a
// bubbletea program: one logical step per input event, then a redraw.
package tui

import (
	"charm.land/bubbles/v2/cursor"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/bullet/internal/config"
	"github.com/xonecas/bullet/internal/outline"
	"github.com/xonecas/bullet/internal/store"
)

// statusRows is the vertical space reserved below the outline: one separator
// line and the status bar.
const statusRows = 2

// Options carries the resolved session configuration. Constructed once at
// startup; the model never reads ambient state.
type Options struct {
	DocPath   string
	Autosave  string // config.AutosaveEager or config.AutosaveDeferred
	SavedText string // document text as currently persisted on disk
	Journal   *store.Journal
}

// Model is the editing session: the document is the single source of truth,
// the cursor is a position over it, and every render derives the viewport
// from scratch.
type Model struct {
	width  int
	height int

	doc *outline.Document
	cur outline.Cursor

	docPath string
	eager   bool
	journal *store.Journal

	// lastSaved mirrors the text most recently persisted; the status bar
	// derives unsaved-change counts from it.
	lastSaved string
	changes   changeCounts
	saveErr   string
	quitting  bool

	caret  cursor.Model
	spin   spinner.Model
	styles Styles
}

// New creates the session model over a loaded document.
func New(doc *outline.Document, opts Options) Model {
	styles := defaultStyles()

	c := cursor.New()
	c.SetMode(cursor.CursorBlink)
	c.Style = styles.Caret
	c.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Caret

	return Model{
		doc:       doc,
		cur:       outline.NewCursor(doc),
		docPath:   opts.DocPath,
		eager:     opts.Autosave != config.AutosaveDeferred,
		journal:   opts.Journal,
		lastSaved: opts.SavedText,
		changes:   diffCounts(opts.SavedText, doc.Serialize()),
		caret:     c,
		spin:      s,
		styles:    styles,
	}
}

// Init starts the caret blink and spinner tick loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.caret.Blink())
}
