package custom

import (
	"fmt"
	"time"

	"github.com/radiodl-cli/radiodl/source"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

func getBool(table *lua.LTable, key string) bool {
	return lua.LVAsBool(table.RawGetString(key))
}

func getNumber(table *lua.LTable, key string) float64 {
	if n, ok := table.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// Layouts accepted for the published field.
var publishedLayouts = []string{time.RFC3339, time.DateTime, time.DateOnly}

func episodeFromTable(table *lua.LTable) (*source.Episode, error) {
	title := getString(table, "title")
	audio := getString(table, "audio_url")
	listen := getString(table, "listen_url")

	if title == "" {
		return nil, fmt.Errorf("episode must have a title")
	}

	if audio == "" && listen == "" {
		return nil, fmt.Errorf("episode %q must have audio_url or listen_url", title)
	}

	ep := &source.Episode{
		Title:     title,
		AudioURL:  audio,
		ListenURL: listen,
		LargeFile: getBool(table, "large_file"),
		Duration:  time.Duration(getNumber(table, "duration")) * time.Second,
	}

	if raw := getString(table, "published"); raw != "" {
		for _, layout := range publishedLayouts {
			if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
				ep.Published = &t
				break
			}
		}
	}

	return ep, nil
}

func episodeToTable(L *lua.LState, ep *source.Episode) *lua.LTable {
	table := L.NewTable()
	table.RawSetString("title", lua.LString(ep.Title))
	table.RawSetString("program", lua.LString(ep.Program))
	table.RawSetString("audio_url", lua.LString(ep.AudioURL))
	table.RawSetString("listen_url", lua.LString(ep.ListenURL))
	table.RawSetString("large_file", lua.LBool(ep.LargeFile))
	return table
}
