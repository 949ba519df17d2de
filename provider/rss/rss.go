// Package rss reads any podcast feed (Anchor, Podbean and the like).
package rss

import (
	"context"

	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program = "Podcast RSS"
	limit   = 5
)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program)}
}

// Episodes returns the newest items that carry audio.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	feed, err := s.FetchFeed(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	return s.FeedEpisodes(feed, limit, "Episodio", false, false), nil
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(context.Context, string) string { return "" })
}
