package outline

// Edit operations. Each is one atomic transition over Document + Cursor and
// never fails: out-of-range requests are no-ops or clamp, matching the
// cursor's movement contract.

// InsertLineBelow inserts an empty-content sibling line immediately after the
// cursor's row, inheriting the current row's indentation prefix verbatim so
// siblings line up even when the indent is not a width multiple. The cursor
// moves to the new line's first content column. A blank separator line spawns
// a root-level bullet.
func (d *Document) InsertLineBelow(c *Cursor) {
	cur := d.At(c.Row)
	nl := EmptyAt(0, d.indentWidth)
	if !cur.IsBlank() {
		nl = NewLine(cur.Raw()[:cur.IndentLen()] + string(Marker) + " ")
	}

	d.lines = append(d.lines, Line{})
	copy(d.lines[c.Row+2:], d.lines[c.Row+1:])
	d.lines[c.Row+1] = nl

	c.Row++
	c.Col = nl.NontextLen()
}

// Indent deepens the current line by one level and carries the cursor column
// along. No-op on blank separator lines (indenting one would produce a line
// the validator rejects).
func (d *Document) Indent(c *Cursor) {
	if d.lines[c.Row].IsBlank() {
		return
	}
	d.lines[c.Row] = d.lines[c.Row].indent(d.indentWidth)
	c.Col += d.indentWidth
}

// Dedent removes one indentation level from the current line. No-op at depth
// zero and on blank separator lines.
func (d *Document) Dedent(c *Cursor) {
	if d.lines[c.Row].IsBlank() {
		return
	}
	nl, removed := d.lines[c.Row].dedent(d.indentWidth)
	if removed == 0 {
		return
	}
	d.lines[c.Row] = nl
	c.Col -= removed
	c.clampCol(d)
}

// DeleteLine removes the cursor's row. The cursor moves to the previous line,
// clamping to row 0 when the first line is deleted. Deleting the only
// remaining line resets the document to a single empty root bullet, so the
// document is never empty and the cursor row stays valid.
func (d *Document) DeleteLine(c *Cursor) {
	if len(d.lines) == 1 {
		d.lines[0] = EmptyAt(0, d.indentWidth)
		c.Row = 0
		c.Col = d.lines[0].NontextLen()
		return
	}
	d.lines = append(d.lines[:c.Row], d.lines[c.Row+1:]...)
	c.Row--
	c.Clamp(d)
}

// InsertRune splices r into the current line at the cursor column and
// advances the column past it. No-op on blank separator lines.
func (d *Document) InsertRune(c *Cursor, r rune) {
	line := d.lines[c.Row]
	if line.IsBlank() {
		return
	}
	if c.Col > line.Len() {
		c.Col = line.Len()
	}
	d.lines[c.Row] = line.insertRuneAt(c.Col, r)
	c.Col++
}

// DeleteRune removes the rune immediately before the cursor column and
// retreats the column. No-op at the leftmost content column: the deletion
// can never eat into the indentation or marker region.
func (d *Document) DeleteRune(c *Cursor) {
	line := d.lines[c.Row]
	if line.IsBlank() || c.Col <= line.NontextLen() {
		return
	}
	d.lines[c.Row] = line.deleteRuneBefore(c.Col)
	c.Col--
}
