package outline

// Cursor is a (row, col) position over a Document. Row always indexes a valid
// line; col is a rune offset into the current line's raw text and never sits
// inside the indentation or marker region. All movement is total: requests
// that would leave the document clamp or no-op, they never fail.
//
// Movement keeps col within [NontextLen, MaxCursorCol] of the current line.
// Edit operations may transiently park col at the line length (the insertion
// point after the last rune); the next movement re-clamps onto the last rune.
type Cursor struct {
	Row int
	Col int
}

// NewCursor returns a cursor on the first content column of row 0.
func NewCursor(d *Document) Cursor {
	return Cursor{Row: 0, Col: d.At(0).NontextLen()}
}

// clampStep bounds a movement request so a single step saturates at the line
// boundary instead of overshooting: n is forced into [1, lineLen-1].
func clampStep(n, lineLen int) int {
	hi := lineLen - 1
	if hi < 1 {
		hi = 1
	}
	if n < 1 {
		return 1
	}
	if n > hi {
		return hi
	}
	return n
}

// MoveRight advances col by n within the current line. Past the end of the
// line it moves to the next line's first content column, or clamps to the
// last valid offset when no next line exists.
func (c *Cursor) MoveRight(d *Document, n int) {
	line := d.At(c.Row)
	n = clampStep(n, line.Len())
	if c.Col+n <= line.MaxCursorCol() {
		c.Col += n
		return
	}
	if c.Row+1 < d.Len() {
		c.Row++
		c.Col = d.At(c.Row).NontextLen()
		return
	}
	c.Col = line.MaxCursorCol()
}

// MoveLeft retreats col by n within the current line. Past the first content
// column it moves to the previous line's last valid offset, or clamps to the
// first content column when no previous line exists.
func (c *Cursor) MoveLeft(d *Document, n int) {
	line := d.At(c.Row)
	n = clampStep(n, line.Len())
	if c.Col-n >= line.NontextLen() {
		c.Col -= n
		return
	}
	if c.Row > 0 {
		c.Row--
		c.Col = d.At(c.Row).MaxCursorCol()
		return
	}
	c.Col = line.NontextLen()
}

// MoveUp moves the cursor n rows up if the target row exists, preserving the
// column where possible and clamping it into the new line's legal range.
// Out-of-bounds requests are no-ops.
func (c *Cursor) MoveUp(d *Document, n int) {
	if n < 1 || c.Row-n < 0 {
		return
	}
	c.Row -= n
	c.clampCol(d)
}

// MoveDown is the downward counterpart of MoveUp.
func (c *Cursor) MoveDown(d *Document, n int) {
	if n < 1 || c.Row+n >= d.Len() {
		return
	}
	c.Row += n
	c.clampCol(d)
}

// Clamp forces the cursor back into the document's legal range. Edit
// operations call it after structural mutations (line deletion in particular,
// where the row index can fall off either end).
func (c *Cursor) Clamp(d *Document) {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row >= d.Len() {
		c.Row = d.Len() - 1
	}
	c.clampCol(d)
}

func (c *Cursor) clampCol(d *Document) {
	line := d.At(c.Row)
	if c.Col < line.NontextLen() {
		c.Col = line.NontextLen()
	}
	if c.Col > line.MaxCursorCol() {
		c.Col = line.MaxCursorCol()
	}
}
