package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type EpisodesFilter func([]*source.Episode) ([]*source.Episode, error)

type Options struct {
	Context context.Context
	Out     io.Writer
	Source  source.Source
	Json    bool
	// Resolve asks the source for the audio URL of listen-page episodes.
	Resolve bool
	Filter  mo.Option[EpisodesFilter]
}

// ParseEpisodesFilter understands "first", "last", "all", a range "1-3",
// a single index "2" and a title substring "@text@". Indexes start at 0.
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Subset(episodes, 0, 1), nil
		}, nil
	case "last":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Subset(episodes, -1, 1), nil
		}, nil
	case "all":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return episodes, nil
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(episodes []*source.Episode) ([]*source.Episode, error) {
				n := uint64(len(episodes))
				start, end := util.Min(start, n), util.Min(end+1, n)
				if start > end {
					return []*source.Episode{}, nil
				}
				return episodes[start:end], nil
			}, nil
		}
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Title), sub)
			}), nil
		}, nil
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			if uint64(len(episodes)) <= idx {
				return []*source.Episode{}, nil
			}
			return []*source.Episode{episodes[idx]}, nil
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
