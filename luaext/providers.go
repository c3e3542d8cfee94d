package luaext

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/statuscol/gutter"
)

// Errors returned when wiring Lua providers.
var (
	// ErrNotFunction indicates the bound Lua value is not a function.
	ErrNotFunction = errors.New("lua provider is not a function")

	// ErrNotBound indicates a provider was called before a function was
	// bound for it.
	ErrNotBound = errors.New("lua provider not bound")
)

// Providers adapts Lua functions to the gutter's SignProvider and
// FoldProvider interfaces.
type Providers struct {
	mu    sync.Mutex
	state *lua.LState
	signs lua.LValue
	fold  lua.LValue
}

// New wraps a Lua state. The caller keeps ownership of the state and is
// responsible for closing it.
func New(state *lua.LState) *Providers {
	return &Providers{state: state}
}

// BindGlobals binds the sign and fold provider functions from globals of
// the given names. Either name may be empty to leave that provider
// unbound.
func (p *Providers) BindGlobals(signsName, foldName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if signsName != "" {
		fn := p.state.GetGlobal(signsName)
		if _, ok := fn.(*lua.LFunction); !ok {
			return fmt.Errorf("%w: global %q", ErrNotFunction, signsName)
		}
		p.signs = fn
	}
	if foldName != "" {
		fn := p.state.GetGlobal(foldName)
		if _, ok := fn.(*lua.LFunction); !ok {
			return fmt.Errorf("%w: global %q", ErrNotFunction, foldName)
		}
		p.fold = fn
	}
	return nil
}

// SetSignsFunc binds the sign provider function directly.
func (p *Providers) SetSignsFunc(fn lua.LValue) error {
	if _, ok := fn.(*lua.LFunction); !ok {
		return ErrNotFunction
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signs = fn
	return nil
}

// SetFoldFunc binds the fold provider function directly.
func (p *Providers) SetFoldFunc(fn lua.LValue) error {
	if _, ok := fn.(*lua.LFunction); !ok {
		return ErrNotFunction
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fold = fn
	return nil
}

// SignsForLine implements gutter.SignProvider by calling the bound Lua
// function with (buffer, line).
func (p *Providers) SignsForLine(buffer, line int) ([]gutter.SignMark, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.signs == nil {
		return nil, ErrNotBound
	}
	ret, err := p.call(p.signs, lua.LNumber(buffer), lua.LNumber(line))
	if err != nil {
		return nil, err
	}
	return signMarksFromLua(ret), nil
}

// FoldInfo implements gutter.FoldProvider by calling the bound Lua
// function with (window, line).
func (p *Providers) FoldInfo(window, line int) (gutter.LineFoldInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fold == nil {
		return gutter.LineFoldInfo{}, ErrNotBound
	}
	ret, err := p.call(p.fold, lua.LNumber(window), lua.LNumber(line))
	if err != nil {
		return gutter.LineFoldInfo{}, err
	}
	return foldInfoFromLua(ret), nil
}

// call invokes a Lua function with protection; errors inside the script
// come back as Go errors instead of panics.
func (p *Providers) call(fn lua.LValue, args ...lua.LValue) (lua.LValue, error) {
	err := p.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return lua.LNil, err
	}
	ret := p.state.Get(-1)
	p.state.Pop(1)
	return ret, nil
}
