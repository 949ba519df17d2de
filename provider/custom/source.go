// Package custom runs program scrapers written in Lua.
// A script defines Episodes(url) and may define AudioURL(episode).
package custom

import (
	"context"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

type luaSource struct {
	name    string
	listing string
	program string

	mu    sync.Mutex
	state *lua.LState
}

// Name implements source.Source.
func (s *luaSource) Name() string {
	return s.program
}

// URL implements source.Source.
func (s *luaSource) URL() string {
	return s.listing
}

// Script returns the script name the source was loaded from.
func (s *luaSource) Script() string {
	return s.name
}

// call runs a global function with one return value of the given type.
// The Lua state is not safe for concurrent use, so calls are serialized.
func (s *luaSource) call(ctx context.Context, fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}

// Close releases the Lua state. The source is unusable afterwards.
func (s *luaSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsClosed() {
		s.state.Close()
	}
	return nil
}

func (s *luaSource) defines(fn string) bool {
	return s.state.GetGlobal(fn).Type() == lua.LTFunction
}
