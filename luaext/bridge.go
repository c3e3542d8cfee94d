package luaext

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/statuscol/gutter"
)

// signMarksFromLua converts a Lua array of sign tables to marks,
// preserving array order (the resolver's tie-break depends on it).
// Non-table values and malformed elements convert to nothing.
func signMarksFromLua(lv lua.LValue) []gutter.SignMark {
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return nil
	}

	var marks []gutter.SignMark
	n := tbl.Len()
	for i := 1; i <= n; i++ {
		entry, ok := tbl.RawGetInt(i).(*lua.LTable)
		if ok {
			marks = append(marks, gutter.SignMark{
				Glyph:     tableString(entry, "glyph"),
				Highlight: tableString(entry, "hl"),
				Priority:  tableInt(entry, "priority"),
			})
		}
	}
	return marks
}

// foldInfoFromLua converts a fold table to LineFoldInfo. A non-table
// value converts to the zero info (no fold).
func foldInfoFromLua(lv lua.LValue) gutter.LineFoldInfo {
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return gutter.LineFoldInfo{}
	}
	return gutter.LineFoldInfo{
		StartLine:        tableInt(tbl, "start"),
		Level:            tableInt(tbl, "level"),
		LowestStartLevel: tableInt(tbl, "lowest"),
		HiddenLines:      tableInt(tbl, "hidden"),
	}
}

func tableString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func tableInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}
