// Command statuscol-demo renders the status column against a synthetic
// buffer in a terminal so the fold, sign, number and name-disambiguation
// behavior can be inspected interactively.
//
// Keys: j/k move the cursor, z toggles the fold under the cursor,
// r cycles the numbering mode, s toggles sign routing through the number
// column, q quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/statuscol/bufname"
	"github.com/dshills/statuscol/config"
	"github.com/dshills/statuscol/gutter"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to a settings TOML file")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		settings = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	app := newApp(settings)
	if err := app.loop(screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// foldRange is a foldable span of the demo document, outermost first.
type foldRange struct {
	start, end int
	closed     bool
}

// document is the synthetic buffer backing the demo. It implements
// gutter.SignProvider and gutter.FoldProvider.
type document struct {
	lines []string
	folds []foldRange
	signs map[int][]gutter.SignMark
}

func (d *document) SignsForLine(buffer, line int) ([]gutter.SignMark, error) {
	return d.signs[line], nil
}

func (d *document) FoldInfo(window, line int) (gutter.LineFoldInfo, error) {
	var info gutter.LineFoldInfo
	for i := range d.folds {
		f := &d.folds[i]
		if line < f.start || line > f.end {
			continue
		}
		info.Level++
		info.StartLine = f.start
		if f.closed {
			info.HiddenLines = f.end - f.start
		} else {
			info.HiddenLines = 0
		}
		if f.start == line && info.LowestStartLevel == 0 {
			info.LowestStartLevel = info.Level
		}
	}
	if info.LowestStartLevel == 0 {
		info.LowestStartLevel = info.Level
	}
	return info, nil
}

// visible returns the document lines not hidden inside closed folds.
func (d *document) visible() []int {
	hiddenBelow := 0
	var lines []int
	for line := 1; line <= len(d.lines); line++ {
		if line <= hiddenBelow {
			continue
		}
		lines = append(lines, line)
		for _, f := range d.folds {
			if f.closed && f.start == line && f.end > hiddenBelow {
				hiddenBelow = f.end
			}
		}
	}
	return lines
}

// toggleFold flips the innermost fold containing line.
func (d *document) toggleFold(line int) {
	inner := -1
	for i, f := range d.folds {
		if line >= f.start && line <= f.end {
			inner = i
		}
	}
	if inner >= 0 {
		d.folds[inner].closed = !d.folds[inner].closed
	}
}

type app struct {
	settings config.Settings
	doc      *document
	buffers  []bufname.Entry
	cursor   int // index into doc.visible()
	numMode  int // 0 absolute, 1 relative, 2 hybrid
}

func newApp(settings config.Settings) *app {
	return &app{
		settings: settings,
		doc:      demoDocument(),
		buffers: []bufname.Entry{
			bufname.NewEntry(1, "/home/demo/project/render/util.go"),
			bufname.NewEntry(2, "/home/demo/project/config/util.go"),
			bufname.NewEntry(3, "/home/demo/project/main.go"),
		},
	}
}

func (a *app) gutter() (*gutter.Gutter, error) {
	cfg := a.settings.Gutter
	switch a.numMode {
	case 1:
		cfg.Numbers.Absolute, cfg.Numbers.Relative = false, true
	case 2:
		cfg.Numbers.Absolute, cfg.Numbers.Relative = true, true
	}
	return gutter.New(cfg, a.doc, a.doc)
}

func (a *app) loop(screen tcell.Screen) error {
	for {
		if err := a.draw(screen); err != nil {
			return err
		}

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if done := a.handleKey(ev); done {
				return nil
			}
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	visible := a.doc.visible()

	switch {
	case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
		return true
	case ev.Rune() == 'j':
		if a.cursor < len(visible)-1 {
			a.cursor++
		}
	case ev.Rune() == 'k':
		if a.cursor > 0 {
			a.cursor--
		}
	case ev.Rune() == 'z':
		a.doc.toggleFold(visible[a.cursor])
		if vis := a.doc.visible(); a.cursor >= len(vis) {
			a.cursor = len(vis) - 1
		}
	case ev.Rune() == 'r':
		a.numMode = (a.numMode + 1) % 3
	case ev.Rune() == 's':
		a.settings.Gutter.Numbers.SignsInNumber = !a.settings.Gutter.Numbers.SignsInNumber
	}
	return false
}

func (a *app) draw(screen tcell.Screen) error {
	g, err := a.gutter()
	if err != nil {
		return err
	}

	screen.Clear()
	width, height := screen.Size()
	visible := a.doc.visible()
	if a.cursor >= len(visible) {
		a.cursor = len(visible) - 1
	}
	cursorLine := visible[a.cursor]
	total := len(a.doc.lines)
	gutterWidth := g.Width(total)

	rows := height - 1 // last row is the buffer bar
	for row := 0; row < rows; row++ {
		ctx := gutter.LineContext{
			Buffer:     1,
			Window:     1,
			CursorLine: cursorLine,
			Total:      total,
			Visible:    false,
		}
		text := ""
		if row < len(visible) {
			ctx.Line = visible[row]
			ctx.Visible = true
			text = a.doc.lines[ctx.Line-1]
		}

		for x, cell := range g.RenderLine(ctx) {
			if cell.Rune == 0 {
				continue
			}
			screen.SetContent(x, row, cell.Rune, nil, styleFor(cell))
		}

		style := tcell.StyleDefault
		if ctx.Visible && ctx.Line == cursorLine {
			style = style.Bold(true)
		}
		col := gutterWidth
		for _, r := range text {
			if col >= width {
				break
			}
			screen.SetContent(col, row, r, nil, style)
			col++
		}
	}

	a.drawBufferBar(screen, width, height-1)
	screen.Show()
	return nil
}

// drawBufferBar renders the open-buffer labels with disambiguated names.
func (a *app) drawBufferBar(screen tcell.Screen, width, row int) {
	barStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		screen.SetContent(x, row, ' ', nil, barStyle)
	}

	col := 1
	for _, entry := range a.buffers {
		prefix := bufname.Disambiguate(entry, a.buffers, a.settings.Names)
		label := " " + prefix + entry.Name + " "
		for _, r := range label {
			if col >= width {
				return
			}
			screen.SetContent(col, row, r, nil, barStyle)
			col++
		}
		col++
	}
}

// styleFor maps gutter cell styles onto tcell styles.
func styleFor(cell gutter.Cell) tcell.Style {
	style := tcell.StyleDefault
	switch cell.Style {
	case gutter.StyleCurrentLine:
		style = style.Foreground(tcell.ColorYellow).Bold(true)
	case gutter.StyleDim:
		style = style.Foreground(tcell.ColorGray)
	case gutter.StyleFold:
		style = style.Foreground(tcell.ColorTeal)
	case gutter.StyleSign:
		style = signStyle(cell.Highlight)
	}
	return style
}

// signStyle maps the sign highlight groups the demo document uses.
func signStyle(highlight string) tcell.Style {
	style := tcell.StyleDefault
	switch highlight {
	case "DiagnosticError":
		return style.Foreground(tcell.ColorRed)
	case "DiagnosticWarn":
		return style.Foreground(tcell.ColorYellow)
	case "GitSignsAdd":
		return style.Foreground(tcell.ColorGreen)
	case "GitSignsChange":
		return style.Foreground(tcell.ColorBlue)
	}
	return style
}

// demoDocument builds the synthetic buffer: a fake source file with
// nested folds and a few diagnostic/git signs.
func demoDocument() *document {
	lines := make([]string, 0, 60)
	for i := 1; i <= 60; i++ {
		lines = append(lines, fmt.Sprintf("line %d of the demo buffer", i))
	}
	lines[4] = "func outer() {"
	lines[9] = "    if nested {"
	lines[14] = "    }"
	lines[19] = "}"
	lines[29] = "func second() {"
	lines[39] = "}"

	return &document{
		lines: lines,
		folds: []foldRange{
			{start: 5, end: 20},
			{start: 10, end: 15},
			{start: 30, end: 40, closed: true},
		},
		signs: map[int][]gutter.SignMark{
			3:  {{Glyph: "●", Highlight: "DiagnosticError", Priority: 100}},
			7:  {{Glyph: "●", Highlight: "GitSignsAdd", Priority: 6}, {Glyph: "●", Highlight: "DiagnosticWarn", Priority: 80}},
			31: {{Glyph: "│", Highlight: "GitSignsChange", Priority: 6}},
		},
	}
}
