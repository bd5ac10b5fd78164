package outline

// glyphs is the cyclic bullet palette. Depth d renders with glyphs[d%3];
// there is no depth limit, the palette repeats every three levels.
var glyphs = [3]rune{'•', '◦', '▸'}

// Glyph returns the display glyph for the given nesting depth.
func Glyph(depth int) rune {
	if depth < 0 {
		depth = 0
	}
	return glyphs[depth%len(glyphs)]
}

// DisplayLine returns the on-screen form of a line: the on-disk marker is
// replaced by the depth-cycled glyph, indentation and content are unchanged.
// Blank separator lines pass through as-is.
//
// The transform is render-only and must only ever be applied to the raw
// on-disk form. Its output no longer begins with the marker, so re-applying
// it to its own output would clobber the first content-adjacent rune instead
// of the marker. DisplayLine is deliberately not idempotent.
func DisplayLine(l Line, indentWidth int) string {
	if l.IsBlank() {
		return l.Raw()
	}
	rs := []rune(l.Raw())
	i := l.IndentLen()
	if i >= len(rs) {
		return l.Raw()
	}
	rs[i] = Glyph(l.Depth(indentWidth))
	return string(rs)
}
