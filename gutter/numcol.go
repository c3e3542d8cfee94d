package gutter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderNumberColumn renders the line number column for one line as
// exactly width cells (nil when width is 0).
//
// Virtual lines render blank. When sign routing is enabled and a sign
// resolved for the line, the sign glyph replaces the number. Otherwise
// the displayed value follows the numbering mode: absolute, relative
// distance from the cursor, or hybrid (absolute on the cursor line,
// distance elsewhere). Values of four or more digits are grouped with
// the configured thousands separator.
func RenderNumberColumn(ctx LineContext, sign SignMark, hasSign bool, cfg NumberConfig, width int) []Cell {
	if width <= 0 {
		return nil
	}

	if ctx.Virtual {
		return blankCells(width, StyleDim)
	}

	if cfg.SignsInNumber && hasSign {
		return renderSignInNumber(sign, width)
	}

	if !cfg.Absolute && !cfg.Relative {
		return blankCells(width, StyleNormal)
	}

	onCursor := ctx.Line == ctx.CursorLine
	text := groupDigits(strconv.Itoa(numberValue(ctx, cfg)), cfg.Thousands)

	// Relative mode left-aligns the cursor line unless overridden.
	leftAlign := cfg.Relative && onCursor && !cfg.CursorRightAlign

	style := StyleDim
	if onCursor {
		style = StyleCurrentLine
	}
	return justifyCells(text, width, leftAlign, style)
}

// numberValue returns the number to display for a line.
func numberValue(ctx LineContext, cfg NumberConfig) int {
	if !cfg.Relative {
		return ctx.Line
	}
	if ctx.Line == ctx.CursorLine {
		if cfg.Absolute {
			return ctx.Line
		}
		return 0
	}
	if ctx.Line > ctx.CursorLine {
		return ctx.Line - ctx.CursorLine
	}
	return ctx.CursorLine - ctx.Line
}

// groupDigits inserts sep every three digits from the least-significant
// end. Values of three digits or fewer pass through unchanged.
func groupDigits(s, sep string) string {
	if sep == "" || len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// renderSignInNumber renders the sign glyph in place of the number,
// left-aligned and padded to the column width.
func renderSignInNumber(sign SignMark, width int) []Cell {
	cells := blankCells(width, StyleSign)
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

// justifyCells lays text out in width cells, left- or right-aligned.
// Overlong text is kept from the least-significant (right) end, which
// preserves the digits nearest the cursor.
func justifyCells(text string, width int, leftAlign bool, style CellStyle) []Cell {
	if w := runewidth.StringWidth(text); w > width {
		text = runewidth.TruncateLeft(text, w-width, "")
	}

	cells := blankCells(width, style)
	runes := []rune(text)
	start := 0
	if !leftAlign {
		start = width - len(runes)
	}
	for i, r := range runes {
		cells[start+i] = Cell{Rune: r, Style: style}
	}
	return cells
}
