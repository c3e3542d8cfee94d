package luaext

import (
	"errors"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/statuscol/gutter"
)

const testScript = `
function signs(buffer, line)
    if line == 3 then
        return {
            { glyph = "W", hl = "DiagnosticWarn", priority = 80 },
            { glyph = "E", hl = "DiagnosticError", priority = 100 },
        }
    end
    return {}
end

function fold(window, line)
    if line >= 10 and line <= 20 then
        return { start = 10, level = 1, lowest = 1, hidden = 0 }
    end
    return { start = 0, level = 0, lowest = 0, hidden = 0 }
end

function boom(buffer, line)
    error("host state gone")
end
`

func newTestProviders(t *testing.T) (*Providers, *lua.LState) {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	if err := L.DoString(testScript); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	return New(L), L
}

func TestBindGlobals(t *testing.T) {
	p, _ := newTestProviders(t)
	if err := p.BindGlobals("signs", "fold"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
}

func TestBindGlobalsMissing(t *testing.T) {
	p, _ := newTestProviders(t)
	err := p.BindGlobals("nosuch", "")
	if !errors.Is(err, ErrNotFunction) {
		t.Errorf("expected ErrNotFunction, got %v", err)
	}
}

func TestSignsForLine(t *testing.T) {
	p, _ := newTestProviders(t)
	if err := p.BindGlobals("signs", "fold"); err != nil {
		t.Fatal(err)
	}

	marks, err := p.SignsForLine(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(marks) != 2 {
		t.Fatalf("expected 2 marks, got %d", len(marks))
	}
	// Array order is preserved for the resolver's tie-break.
	if marks[0].Glyph != "W" || marks[1].Glyph != "E" {
		t.Errorf("marks out of order: %+v", marks)
	}
	if marks[1].Highlight != "DiagnosticError" || marks[1].Priority != 100 {
		t.Errorf("mark fields not converted: %+v", marks[1])
	}

	marks, err = p.SignsForLine(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(marks) != 0 {
		t.Errorf("expected no marks on line 4, got %+v", marks)
	}
}

func TestFoldInfo(t *testing.T) {
	p, _ := newTestProviders(t)
	if err := p.BindGlobals("signs", "fold"); err != nil {
		t.Fatal(err)
	}

	info, err := p.FoldInfo(1, 12)
	if err != nil {
		t.Fatal(err)
	}
	want := gutter.LineFoldInfo{StartLine: 10, Level: 1, LowestStartLevel: 1}
	if info != want {
		t.Errorf("got %+v, want %+v", info, want)
	}

	info, err = p.FoldInfo(1, 99)
	if err != nil {
		t.Fatal(err)
	}
	if info.Level != 0 {
		t.Errorf("expected no fold on line 99, got %+v", info)
	}
}

func TestLuaErrorSurfacesAsProviderError(t *testing.T) {
	p, L := newTestProviders(t)
	if err := p.SetSignsFunc(L.GetGlobal("boom")); err != nil {
		t.Fatal(err)
	}

	_, err := p.SignsForLine(1, 1)
	if err == nil {
		t.Fatal("expected an error from the failing Lua function")
	}
}

func TestUnboundProviders(t *testing.T) {
	p, _ := newTestProviders(t)

	if _, err := p.SignsForLine(1, 1); !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}
	if _, err := p.FoldInfo(1, 1); !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}
}

func TestSetFuncRejectsNonFunction(t *testing.T) {
	p, _ := newTestProviders(t)

	if err := p.SetSignsFunc(lua.LString("nope")); !errors.Is(err, ErrNotFunction) {
		t.Errorf("expected ErrNotFunction, got %v", err)
	}
	if err := p.SetFoldFunc(lua.LNumber(1)); !errors.Is(err, ErrNotFunction) {
		t.Errorf("expected ErrNotFunction, got %v", err)
	}
}

func TestLuaProvidersDriveGutter(t *testing.T) {
	p, _ := newTestProviders(t)
	if err := p.BindGlobals("signs", "fold"); err != nil {
		t.Fatal(err)
	}

	cfg := gutter.DefaultConfig()
	cfg.Folds.Open = "-"
	cfg.Folds.Closed = "+"
	cfg.Folds.Separator = "|"

	g, err := gutter.New(cfg, p, p)
	if err != nil {
		t.Fatal(err)
	}

	cells := g.RenderLine(gutter.LineContext{Line: 3, CursorLine: 1, Total: 50, Visible: true})
	if got := gutter.CellString(cells); got != "E   3  " {
		t.Errorf("got %q, want %q", got, "E   3  ")
	}

	cells = g.RenderLine(gutter.LineContext{Line: 10, CursorLine: 1, Total: 50, Visible: true})
	if got := gutter.CellString(cells); got != "   10- " {
		t.Errorf("got %q, want %q", got, "   10- ")
	}
}
