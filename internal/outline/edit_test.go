package outline

import "testing"

func TestInsertLineBelow(t *testing.T) {
	d := mustLoad(t, "- root", 2)
	c := NewCursor(d)
	d.InsertLineBelow(&c)

	if got := d.Serialize(); got != "- root\n- " {
		t.Errorf("Serialize = %q, want %q", got, "- root\n- ")
	}
	if c.Row != 1 || c.Col != 2 {
		t.Errorf("cursor = (%d,%d), want (1,2)", c.Row, c.Col)
	}
}

func TestInsertLineBelowInheritsDepth(t *testing.T) {
	d := mustLoad(t, "- root\n  - child\n- sibling", 2)
	c := cursorAt(d, 1, 4)
	d.InsertLineBelow(&c)

	if got := d.At(2).Raw(); got != "  - " {
		t.Errorf("new line = %q, want %q", got, "  - ")
	}
	if got := d.At(3).Raw(); got != "- sibling" {
		t.Errorf("following line = %q, want %q", got, "- sibling")
	}
	if c.Row != 2 || c.Col != 4 {
		t.Errorf("cursor = (%d,%d), want (2,4)", c.Row, c.Col)
	}
}

func TestInsertLineBelowKeepsIndentPrefix(t *testing.T) {
	// A 3-space indent is valid at load time even with width 2; the new
	// sibling copies the prefix verbatim instead of rounding to a depth
	// multiple.
	d := mustLoad(t, "   - odd", 2)
	c := cursorAt(d, 0, 5)
	d.InsertLineBelow(&c)

	if got := d.At(1).Raw(); got != "   - " {
		t.Errorf("new line = %q, want %q", got, "   - ")
	}
	if c.Row != 1 || c.Col != 5 {
		t.Errorf("cursor = (%d,%d), want (1,5)", c.Row, c.Col)
	}
}

func TestIndentScenario(t *testing.T) {
	d := mustLoad(t, "- root\n  - child\n- sibling", 2)
	c := cursorAt(d, 2, 2)
	d.Indent(&c)

	want := []int{0, 1, 1}
	for i, w := range want {
		if got := d.At(i).Depth(2); got != w {
			t.Errorf("line %d depth = %d, want %d", i, got, w)
		}
	}
	if c.Col != 4 {
		t.Errorf("col = %d, want 4 (advanced by indent width)", c.Col)
	}
}

func TestIndentDedentKeepsMultiples(t *testing.T) {
	d := mustLoad(t, "- root\n  - child", 2)
	c := cursorAt(d, 1, 4)

	// Any sequence of indent/dedent keeps indentation a multiple of the width.
	ops := []func(){
		func() { d.Indent(&c) },
		func() { d.Indent(&c) },
		func() { d.Dedent(&c) },
		func() { d.Indent(&c) },
		func() { d.Dedent(&c) },
		func() { d.Dedent(&c) },
		func() { d.Dedent(&c) },
		func() { d.Dedent(&c) }, // past depth 0: no-ops
	}
	for i, op := range ops {
		op()
		if in := d.At(1).IndentLen(); in%2 != 0 {
			t.Fatalf("after op %d: indent %d not a multiple of 2", i, in)
		}
	}
	if got := d.At(1).Depth(2); got != 0 {
		t.Errorf("final depth = %d, want 0", got)
	}
}

func TestDedentAtDepthZeroIsNoop(t *testing.T) {
	d := mustLoad(t, "- root", 2)
	c := cursorAt(d, 0, 3)
	before := d.Serialize()
	d.Dedent(&c)
	if d.Serialize() != before {
		t.Errorf("document changed: %q", d.Serialize())
	}
	if c.Col != 3 {
		t.Errorf("col = %d, want 3 (unchanged)", c.Col)
	}
}

func TestDeleteLine(t *testing.T) {
	d := mustLoad(t, "- a\n- b\n- c", 2)
	c := cursorAt(d, 1, 2)
	d.DeleteLine(&c)

	if got := d.Serialize(); got != "- a\n- c" {
		t.Errorf("Serialize = %q, want %q", got, "- a\n- c")
	}
	if c.Row != 0 {
		t.Errorf("row = %d, want 0", c.Row)
	}
}

func TestDeleteLineAtRowZeroClampsCursor(t *testing.T) {
	d := mustLoad(t, "- a\n- b", 2)
	c := cursorAt(d, 0, 2)
	d.DeleteLine(&c)

	if got := d.Serialize(); got != "- b" {
		t.Errorf("Serialize = %q, want %q", got, "- b")
	}
	if c.Row != 0 {
		t.Errorf("row = %d, want 0 (never negative)", c.Row)
	}
}

func TestDeleteOnlyLineResetsToEmptyBullet(t *testing.T) {
	d := mustLoad(t, "  - only child", 2)
	c := cursorAt(d, 0, 7)
	d.DeleteLine(&c)

	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}
	if got := d.At(0).Raw(); got != "- " {
		t.Errorf("line = %q, want %q", got, "- ")
	}
	if c.Row != 0 || c.Col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", c.Row, c.Col)
	}
}

func TestInsertRune(t *testing.T) {
	d := mustLoad(t, "- ", 2)
	c := NewCursor(d)
	for _, r := range "abc" {
		d.InsertRune(&c, r)
	}
	if got := d.At(0).Raw(); got != "- abc" {
		t.Errorf("line = %q, want %q", got, "- abc")
	}
	if c.Col != 5 {
		t.Errorf("col = %d, want 5 (insertion point after last rune)", c.Col)
	}

	// Movement re-clamps onto the last rune.
	c.MoveLeft(d, 1)
	c.MoveRight(d, 10)
	if c.Col != 4 {
		t.Errorf("col = %d, want 4 after movement", c.Col)
	}
}

func TestInsertRuneMidLine(t *testing.T) {
	d := mustLoad(t, "- rot", 2)
	c := cursorAt(d, 0, 4) // on 'o' of "rot"
	d.InsertRune(&c, 'o')
	if got := d.At(0).Raw(); got != "- root" {
		t.Errorf("line = %q, want %q", got, "- root")
	}
	if c.Col != 5 {
		t.Errorf("col = %d, want 5", c.Col)
	}
}

func TestDeleteRuneAtLeftmostContentColumnIsNoop(t *testing.T) {
	d := mustLoad(t, "  - child", 2)
	c := cursorAt(d, 0, 4) // leftmost content column
	before := d.Serialize()
	d.DeleteRune(&c)
	if d.Serialize() != before {
		t.Errorf("document changed: %q (deletion must not eat the marker region)", d.Serialize())
	}
	if c.Col != 4 {
		t.Errorf("col = %d, want 4", c.Col)
	}
}

func TestDeleteRune(t *testing.T) {
	d := mustLoad(t, "- roots", 2)
	c := cursorAt(d, 0, 7) // insertion point after 's'
	d.DeleteRune(&c)
	if got := d.At(0).Raw(); got != "- root" {
		t.Errorf("line = %q, want %q", got, "- root")
	}
	if c.Col != 6 {
		t.Errorf("col = %d, want 6", c.Col)
	}
}

func TestEditsOnBlankLineAreNoops(t *testing.T) {
	d := mustLoad(t, "- a\n\n- b", 2)
	c := cursorAt(d, 1, 2)

	before := d.Serialize()
	d.InsertRune(&c, 'x')
	d.DeleteRune(&c)
	d.Indent(&c)
	d.Dedent(&c)
	if d.Serialize() != before {
		t.Errorf("blank line mutated: %q", d.Serialize())
	}

	// A new line below a blank separator is a root-level bullet.
	d.InsertLineBelow(&c)
	if got := d.At(2).Raw(); got != "- " {
		t.Errorf("new line = %q, want %q", got, "- ")
	}
}
