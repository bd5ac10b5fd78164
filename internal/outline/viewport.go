package outline

// Window selects the contiguous sub-range of lines to render. When the whole
// document fits in the viewport no offset is applied; otherwise the cursor
// row is centered and the window is pushed back against whichever document
// boundary it overran so it always fills the full height. The returned range
// always contains cursorRow.
func Window(total, height, cursorRow int) (start, length int) {
	if total <= 0 || height <= 0 {
		return 0, 0
	}
	if total < height {
		return 0, total
	}
	start = cursorRow - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end - start
}
