package gutter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellStyle describes how to style a gutter cell. The host maps styles
// onto its own highlight groups or terminal attributes.
type CellStyle uint8

const (
	StyleNormal CellStyle = iota
	StyleCurrentLine
	StyleDim
	StyleSign
	StyleFold
)

// Cell represents a single rendered gutter cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Style is the visual style for this cell.
	Style CellStyle

	// Highlight carries a sign's highlight group, if any. Empty for
	// cells that are styled by Style alone.
	Highlight string
}

// RuneWidth returns the display width of a rune (0 for control
// characters, 2 for wide CJK characters).
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// CellString flattens cells into a plain string, useful for tests and
// for hosts that consume strings rather than cells.
func CellString(cells []Cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.Rune == 0 {
			// Continuation cell of a wide glyph.
			continue
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// blankCells returns n space cells with the given style.
func blankCells(n int, style CellStyle) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: style}
	}
	return cells
}
