package gutter

// LineFoldInfo is the fold metadata the host exposes for one line of one
// window. Level 0 means the line is inside no fold.
type LineFoldInfo struct {
	// StartLine is the first line of the innermost fold containing the
	// line.
	StartLine int

	// Level is the nesting depth of the innermost fold.
	Level int

	// LowestStartLevel is the lowest fold level that starts at this
	// line.
	LowestStartLevel int

	// HiddenLines is the number of lines hidden below this line; a
	// value above zero means the innermost fold is closed.
	HiddenLines int
}

// FoldProvider supplies fold metadata per (window, line). An error means
// the window or line could not be resolved; the renderer treats that as
// "no fold".
type FoldProvider interface {
	FoldInfo(window, line int) (LineFoldInfo, error)
}

// FoldGlyphs are the three glyphs the fold column is drawn with.
type FoldGlyphs struct {
	Open      rune
	Closed    rune
	Separator rune
}

// RenderFoldColumn renders the fold column for one line as exactly width
// cells (nil when width is 0).
//
// Only the innermost fold boundary is drawn per line: a closed glyph at
// the fold's own depth column and at the rightmost column when the fold
// is closed, an open glyph where a fold shallower than LowestStartLevel
// begins on this line, separators elsewhere, and blanks beyond the
// fold's depth. Virtual (soft-wrap continuation) lines draw separators
// across the whole width.
func RenderFoldColumn(line int, info LineFoldInfo, virtual bool, width int, glyphs FoldGlyphs) []Cell {
	if width <= 0 {
		return nil
	}

	cells := make([]Cell, width)

	if virtual {
		for i := range cells {
			cells[i] = Cell{Rune: glyphs.Separator, Style: StyleFold}
		}
		return cells
	}

	if info.Level == 0 {
		for i := range cells {
			cells[i] = Cell{Rune: ' ', Style: StyleFold}
		}
		return cells
	}

	closed := info.HiddenLines > 0

	// Nesting depth represented by the first rendered column. Clamped so
	// deep folds narrower than the column stay aligned.
	firstLevel := info.Level - width + 1
	if closed {
		firstLevel--
	}
	if firstLevel < 1 {
		firstLevel = 1
	}

	for col := 1; col <= width; col++ {
		var r rune
		switch {
		case closed && (col == info.Level || col == width):
			r = glyphs.Closed
		case line == info.StartLine && firstLevel+col > info.LowestStartLevel:
			r = glyphs.Open
		default:
			r = glyphs.Separator
		}
		cells[col-1] = Cell{Rune: r, Style: StyleFold}

		// Columns deeper than the fold's own level are not drawn.
		if col == info.Level {
			for i := col; i < width; i++ {
				cells[i] = Cell{Rune: ' ', Style: StyleFold}
			}
			break
		}
	}

	return cells
}
