// Package gracia finds the latest Gracia a Vosotros episode by probing the dated CDN files.
package gracia

import (
	"context"

	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program = "Gracia a Vosotros"
	cdn     = "https://cdn.gty.org/gracia/podcast"
	days    = 7
)

type Source struct {
	scrape.Base
	cdn string
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program), cdn: cdn}
}

// Episodes returns the most recent file published in the last week.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	for _, day := range scrape.DaysBack(s.Today(), days) {
		audio := s.cdn + "/" + day.Format("20060102") + ".mp3"
		if s.Probe(ctx, audio, scrape.ProbeLong) {
			return []*source.Episode{s.Episode(Program+" - "+scrape.DMY(day), audio, "")}, nil
		}
	}

	return nil, nil
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(context.Context, string) string { return "" })
}
