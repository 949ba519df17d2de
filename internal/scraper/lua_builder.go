// Package scraper compiles and installs the Lua scripts behind custom sources.
package scraper

import (
	"bytes"
	"sync"

	"github.com/radiodl-cli/radiodl/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// PreCompileAndLoad runs the script at scriptPath in L, compiling it once per process.
func PreCompileAndLoad(L *lua.LState, scriptPath string) error {
	if cached, ok := bytecodeCache.Load(scriptPath); ok {
		L.Push(L.NewFunctionFromProto(cached.(*lua.FunctionProto)))
		return L.PCall(0, lua.MultRet, nil)
	}

	data, err := filesystem.API().ReadFile(scriptPath)
	if err != nil {
		return err
	}

	chunk, err := parse.Parse(bytes.NewReader(data), scriptPath)
	if err != nil {
		return err
	}

	proto, err := lua.Compile(chunk, scriptPath)
	if err != nil {
		return err
	}

	bytecodeCache.Store(scriptPath, proto)

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Forget drops the compiled script so the next load reads it again.
func Forget(scriptPath string) {
	bytecodeCache.Delete(scriptPath)
}
