package gutter

// SignMark is a sign placed on a buffer line (diagnostic marker, git
// hunk indicator, breakpoint).
type SignMark struct {
	// Glyph is the character(s) to display.
	Glyph string

	// Highlight is the host highlight group for the glyph (optional).
	Highlight string

	// Priority orders competing signs on the same line; higher wins.
	Priority int
}

// SignProvider supplies the signs attached to a buffer line, in placement
// order. An error means the buffer or line could not be resolved; the
// renderer treats that as "no signs".
type SignProvider interface {
	SignsForLine(buffer, line int) ([]SignMark, error)
}

// ResolveSign picks the sign to display among the marks on a line: the
// one with the strictly greatest priority. On a tie the first mark in
// placement order is kept. The second return is false when marks is
// empty.
func ResolveSign(marks []SignMark) (SignMark, bool) {
	if len(marks) == 0 {
		return SignMark{}, false
	}
	best := marks[0]
	for _, m := range marks[1:] {
		if m.Priority > best.Priority {
			best = m
		}
	}
	return best, true
}

// renderSignColumn renders the sign column for one line: the resolved
// sign's glyph left-aligned and padded to width, or blanks.
func renderSignColumn(sign SignMark, ok bool, width int) []Cell {
	cells := blankCells(width, StyleNormal)
	if !ok {
		return cells
	}
	col := 0
	for _, r := range sign.Glyph {
		w := RuneWidth(r)
		if col+w > width {
			break
		}
		cells[col] = Cell{Rune: r, Style: StyleSign, Highlight: sign.Highlight}
		for i := 1; i < w; i++ {
			cells[col+i] = Cell{Rune: 0, Style: StyleSign, Highlight: sign.Highlight}
		}
		col += w
	}
	return cells
}
