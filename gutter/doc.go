// Package gutter renders the per-line status column of an editor window:
// the sign column, the line number column, and the fold column.
//
// The package is pure with respect to host state. Every fact a render
// needs — the line, the cursor line, fold metadata, the signs placed on a
// line — arrives as an explicit argument or through a provider interface
// the host implements. A renderer called twice with the same inputs
// produces the same cells.
//
// # Composition
//
// A Gutter composes the three columns left to right for a single line:
//
//	cfg := gutter.DefaultConfig()
//	g, err := gutter.New(cfg, signProvider, foldProvider)
//	if err != nil {
//	    // configuration was invalid; nothing was rendered
//	}
//	cells := g.RenderLine(gutter.LineContext{
//	    Buffer:     buf,
//	    Line:       line,
//	    CursorLine: cur,
//	    Total:      total,
//	    Visible:    true,
//	})
//
// The returned cells carry a CellStyle the host maps onto its own
// highlighting. The package never touches the terminal.
//
// # Degraded rendering
//
// A provider that fails (stale buffer, closed window) is treated the same
// as a provider with nothing to report: the affected column renders blank.
// Errors never propagate out of the redraw path. Configuration, by
// contrast, is validated once in New and assumed valid from then on.
package gutter
