package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/internal/scraper"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/util"
	lua "github.com/yuin/gopher-lua"
)

// LoadSource executes the script at path and returns a source for listing.
// An empty program falls back to the script name.
func LoadSource(path, listing, program string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)

	if state.GetGlobal(constant.EpisodesFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.EpisodesFn, name)
	}

	if program == "" {
		program = name
	}

	return &luaSource{
		name:    name,
		listing: listing,
		program: program,
		state:   state,
	}, nil
}
