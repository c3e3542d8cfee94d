package gutter

// LineContext carries every per-line fact a render needs. The host fills
// one per visible line; nothing is read from ambient state.
type LineContext struct {
	// Buffer identifies the buffer for sign lookup.
	Buffer int

	// Window identifies the window for fold lookup.
	Window int

	// Line is the 1-based line number.
	Line int

	// CursorLine is the 1-based line the cursor is on.
	CursorLine int

	// Total is the buffer's line count, used to size the number column.
	Total int

	// Virtual marks soft-wrap continuation lines.
	Virtual bool

	// Visible is false for filler rows past the end of the buffer.
	Visible bool
}

// Gutter renders the composed status column: sign column, number column,
// fold column, left to right. It holds only immutable configuration and
// provider references; all varying facts arrive in a LineContext, so a
// single Gutter may serve concurrent redraws of different windows.
type Gutter struct {
	cfg    Config
	glyphs FoldGlyphs
	signs  SignProvider
	folds  FoldProvider
}

// New creates a Gutter after validating the configuration. Either
// provider may be nil, in which case its column renders blank.
func New(cfg Config, signs SignProvider, folds FoldProvider) (*Gutter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Gutter{
		cfg:    cfg,
		glyphs: cfg.Folds.glyphs(),
		signs:  signs,
		folds:  folds,
	}, nil
}

// Config returns the configuration the Gutter was built with.
func (g *Gutter) Config() Config {
	return g.cfg
}

// Width returns the total gutter width for a buffer of total lines.
func (g *Gutter) Width(total int) int {
	return g.cfg.Signs.Width + g.numberWidth(total) + g.cfg.Folds.Width
}

// NumberWidth returns the number column width for a buffer of total
// lines.
func (g *Gutter) NumberWidth(total int) int {
	return g.numberWidth(total)
}

// RenderLine renders the status column for one line. The result always
// has exactly Width(ctx.Total) cells (nil when that is 0).
func (g *Gutter) RenderLine(ctx LineContext) []Cell {
	width := g.Width(ctx.Total)
	if width == 0 {
		return nil
	}

	if !ctx.Visible {
		return g.renderFiller(ctx)
	}

	sign, hasSign := g.resolveSign(ctx)

	cells := make([]Cell, 0, width)

	if g.cfg.Signs.Width > 0 {
		if g.cfg.Numbers.SignsInNumber {
			// Sign column stays blank; the glyph moves to the number
			// column.
			cells = append(cells, blankCells(g.cfg.Signs.Width, StyleNormal)...)
		} else {
			cells = append(cells, renderSignColumn(sign, hasSign, g.cfg.Signs.Width)...)
		}
	}

	if nw := g.numberWidth(ctx.Total); nw > 0 {
		cells = append(cells, RenderNumberColumn(ctx, sign, hasSign, g.cfg.Numbers, nw)...)
	}

	if g.cfg.Folds.Width > 0 {
		cells = append(cells, g.renderFoldColumn(ctx)...)
	}

	return cells
}

// RenderLineString renders the status column for one line as a plain
// string, for hosts that consume strings rather than cells.
func (g *Gutter) RenderLineString(ctx LineContext) string {
	return CellString(g.RenderLine(ctx))
}

// resolveSign fetches and resolves the line's sign. Provider errors are
// treated as "no sign".
func (g *Gutter) resolveSign(ctx LineContext) (SignMark, bool) {
	if g.signs == nil || ctx.Virtual {
		return SignMark{}, false
	}
	marks, err := g.signs.SignsForLine(ctx.Buffer, ctx.Line)
	if err != nil {
		return SignMark{}, false
	}
	return ResolveSign(marks)
}

// renderFoldColumn fetches fold metadata and renders the fold column.
// Provider errors render as "no fold".
func (g *Gutter) renderFoldColumn(ctx LineContext) []Cell {
	var info LineFoldInfo
	if g.folds != nil {
		fi, err := g.folds.FoldInfo(ctx.Window, ctx.Line)
		if err == nil {
			info = fi
		}
	}
	return RenderFoldColumn(ctx.Line, info, ctx.Virtual, g.cfg.Folds.Width, g.glyphs)
}

// renderFiller renders the row for a line past the end of the buffer:
// a dim '~' in the number column, everything else blank.
func (g *Gutter) renderFiller(ctx LineContext) []Cell {
	cells := blankCells(g.Width(ctx.Total), StyleDim)
	if nw := g.numberWidth(ctx.Total); nw > 0 {
		cells[g.cfg.Signs.Width+nw-1] = Cell{Rune: '~', Style: StyleDim}
	}
	return cells
}

// numberWidth returns the width of the number column: enough digits for
// the buffer's last line, at least MinWidth. Zero when numbering is off
// and signs are not routed through the column.
func (g *Gutter) numberWidth(total int) int {
	n := g.cfg.Numbers
	if !n.Absolute && !n.Relative && !n.SignsInNumber {
		return 0
	}
	digits := countDigits(total)
	if n.Thousands != "" && digits > 3 {
		digits += (digits - 1) / 3
	}
	if digits < n.MinWidth {
		digits = n.MinWidth
	}
	return digits
}

// countDigits returns the number of digits needed to display n.
func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
