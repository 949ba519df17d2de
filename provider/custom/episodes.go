package custom

import (
	"context"
	"strings"

	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/source"
	lua "github.com/yuin/gopher-lua"
)

// Episodes calls the script's Episodes(url).
// Malformed entries are skipped; it fails only when every entry was malformed.
func (s *luaSource) Episodes(ctx context.Context) ([]*source.Episode, error) {
	val, err := s.call(ctx, constant.EpisodesFn, lua.LTTable, lua.LString(s.listing))
	if err != nil {
		return nil, err
	}

	var (
		episodes []*source.Episode
		errs     []error
	)

	val.(*lua.LTable).ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return
		}

		ep, err := episodeFromTable(v.(*lua.LTable))
		if err != nil {
			errs = append(errs, err)
			return
		}

		ep.Program = s.program
		ep.OriginalURL = s.listing
		episodes = append(episodes, ep)
	})

	if len(episodes) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	for _, err := range errs {
		log.Warnf("%s: %v", s.name, err)
	}

	return episodes, nil
}

// AudioURL returns the episode's audio URL, asking the script's AudioURL(episode) for listen pages.
func (s *luaSource) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	if ep.Resolved() {
		return ep.AudioURL, nil
	}

	if ep.ListenURL == "" || !s.defines(constant.AudioURLFn) {
		return "", source.ErrNoAudio
	}

	s.mu.Lock()
	table := episodeToTable(s.state, ep)
	s.mu.Unlock()

	val, err := s.call(ctx, constant.AudioURLFn, lua.LTString, table)
	if err != nil {
		return "", err
	}

	audio := strings.TrimSpace(val.String())
	if audio == "" {
		return "", source.ErrNoAudio
	}

	return audio, nil
}
