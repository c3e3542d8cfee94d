// Package luaext lets hosts script status-column providers in Lua.
//
// Editor ecosystems configure sign placement and fold metadata from user
// scripts; this package wraps a gopher-lua state so those scripts can
// back the gutter's provider interfaces directly.
//
//	L := lua.NewState()
//	defer L.Close()
//	if err := L.DoString(script); err != nil { ... }
//
//	providers := luaext.New(L)
//	if err := providers.BindGlobals("signs", "fold"); err != nil { ... }
//
//	g, err := gutter.New(cfg, providers, providers)
//
// The Lua side implements:
//
//	function signs(buffer, line)
//	    return { { glyph = "●", hl = "DiagnosticError", priority = 100 } }
//	end
//
//	function fold(window, line)
//	    return { start = 10, level = 1, lowest = 1, hidden = 0 }
//	end
//
// Calls are protected; a Lua error surfaces as a provider error, which
// the gutter renders as a blank column. The wrapper serializes calls
// because a Lua state is not safe for concurrent use.
package luaext
