// Package outline implements the bullet outline document model: the typed
// line representation, load-time validation, the indentation-aware cursor,
// edit operations, and the viewport window.
package outline

import "strings"

// Marker is the structural lead character of a bullet line in its on-disk form.
const Marker = '-'

// Line is one outline entry in its raw on-disk form. The raw string is the
// stored representation; indentation, marker, and content are derived through
// methods so no caller re-slices the string by hand.
type Line struct {
	raw string
}

// NewLine wraps a raw document line.
func NewLine(raw string) Line { return Line{raw: raw} }

// EmptyAt returns an empty-content bullet line at the given depth.
func EmptyAt(depth, indentWidth int) Line {
	return Line{raw: strings.Repeat(" ", depth*indentWidth) + string(Marker) + " "}
}

// Raw returns the on-disk form of the line.
func (l Line) Raw() string { return l.raw }

// Len returns the length of the line in runes.
func (l Line) Len() int { return len([]rune(l.raw)) }

// IsBlank reports whether the line is a blank separator (empty or
// whitespace-only). Blank lines carry no marker and are never edited in place.
func (l Line) IsBlank() bool { return strings.TrimSpace(l.raw) == "" }

// IndentLen returns the length of the leading run of spaces.
func (l Line) IndentLen() int {
	n := 0
	for _, r := range l.raw {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

// Depth returns the nesting level derived from the indentation prefix.
func (l Line) Depth(indentWidth int) int {
	if indentWidth <= 0 {
		return 0
	}
	return l.IndentLen() / indentWidth
}

// NontextLen returns the number of leading columns the cursor may never
// occupy: indentation plus marker plus one separating space. The reservation
// holds even when the line is shorter than that (empty content), so every
// line has at least one addressable content column.
func (l Line) NontextLen() int { return l.IndentLen() + 2 }

// MaxCursorCol returns the last column movement may place the cursor on:
// the final rune of the line, or the first content column when the content
// is empty.
func (l Line) MaxCursorCol() int {
	if last := l.Len() - 1; last > l.NontextLen() {
		return last
	}
	return l.NontextLen()
}

// Content returns the text after the marker and its separating space.
func (l Line) Content() string {
	r := []rune(l.raw)
	start := l.IndentLen() + 2
	if start > len(r) {
		start = len(r)
	}
	return string(r[start:])
}

// indent prepends one indent-width block of spaces.
func (l Line) indent(indentWidth int) Line {
	return Line{raw: strings.Repeat(" ", indentWidth) + l.raw}
}

// dedent removes up to one indent-width block from the prefix. Returns the
// number of columns actually removed.
func (l Line) dedent(indentWidth int) (Line, int) {
	n := indentWidth
	if in := l.IndentLen(); in < n {
		n = in
	}
	if n <= 0 {
		return l, 0
	}
	return Line{raw: l.raw[n:]}, n
}

// insertRuneAt splices r in before the given rune offset, clamped to the
// line boundaries.
func (l Line) insertRuneAt(col int, r rune) Line {
	rs := []rune(l.raw)
	if col < 0 {
		col = 0
	}
	if col > len(rs) {
		col = len(rs)
	}
	out := make([]rune, 0, len(rs)+1)
	out = append(out, rs[:col]...)
	out = append(out, r)
	out = append(out, rs[col:]...)
	return Line{raw: string(out)}
}

// deleteRuneBefore removes the rune immediately before the given offset.
func (l Line) deleteRuneBefore(col int) Line {
	rs := []rune(l.raw)
	if col <= 0 || col > len(rs) {
		return l
	}
	out := make([]rune, 0, len(rs)-1)
	out = append(out, rs[:col-1]...)
	out = append(out, rs[col:]...)
	return Line{raw: string(out)}
}
