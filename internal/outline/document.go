package outline

import (
	"fmt"
	"strings"
)

// ValidationError reports a line that is not a bullet line. Load fails on the
// first offending line; the session must not open with an invalid document.
type ValidationError struct {
	Line int // 1-based line number in the input text
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: not a bullet line (must start with %q)", e.Line, string(Marker))
}

// Document is the ordered sequence of outline lines. It is the single mutable
// source of truth for an editing session: the cursor is a position over it,
// the viewport derives a read-only slice of it, and the codec formats it per
// line at render time.
type Document struct {
	lines       []Line
	indentWidth int
}

// Load parses raw document text. Every non-empty line must start with the
// marker character after trimming whitespace; blank separator lines pass
// through unchanged. No normalization is applied; lines keep their raw form.
//
// Empty input yields a document holding a single empty root bullet, so a
// session always has a line for the cursor to sit on.
func Load(text string, indentWidth int) (*Document, error) {
	d := &Document{indentWidth: indentWidth}
	if text == "" {
		d.lines = []Line{EmptyAt(0, indentWidth)}
		return d, nil
	}
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" && !strings.HasPrefix(trimmed, string(Marker)) {
			return nil, &ValidationError{Line: i + 1}
		}
		d.lines = append(d.lines, NewLine(raw))
	}
	return d, nil
}

// Serialize returns the on-disk text: lines joined by a single line break,
// no trailing line break.
func (d *Document) Serialize() string {
	raws := make([]string, len(d.lines))
	for i, l := range d.lines {
		raws[i] = l.Raw()
	}
	return strings.Join(raws, "\n")
}

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// At returns the line at index i.
func (d *Document) At(i int) Line { return d.lines[i] }

// IndentWidth returns the configured indentation width.
func (d *Document) IndentWidth() int { return d.indentWidth }

// Display returns the on-screen form of line i.
func (d *Document) Display(i int) string {
	return DisplayLine(d.lines[i], d.indentWidth)
}
