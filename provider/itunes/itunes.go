// Package itunes finds a podcast's feed through the Apple Podcasts directory and reads it.
package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/buger/jsonparser"
	"github.com/radiodl-cli/radiodl/internal/cache"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/network"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	API   = "https://itunes.apple.com"
	limit = 5
)

var ErrNoFeed = errors.New("no feed in directory")

var podcastID = regexp.MustCompile(`/id(\d+)`)

// Directory queries the lookup and search endpoints.
type Directory struct {
	Session *network.Session
	API     string
}

func NewDirectory(session *network.Session) *Directory {
	return &Directory{Session: session, API: API}
}

type lookup struct {
	FeedURL string `json:"feed_url"`
}

// FeedURL returns the feed of the podcast with the given id, or of the first search hit for term.
func (d *Directory) FeedURL(ctx context.Context, id, term string) (string, error) {
	var query string
	if id != "" {
		query = fmt.Sprintf("%s/lookup?id=%s&entity=podcast", d.API, url.QueryEscape(id))
	} else {
		query = fmt.Sprintf("%s/search?media=podcast&term=%s", d.API, url.QueryEscape(term))
	}

	k := cache.Key(query, "itunes")

	var cached lookup
	if cache.Read(k, &cached) && cached.FeedURL != "" {
		return cached.FeedURL, nil
	}

	body, err := d.Session.Fetch(ctx, query)
	if err != nil {
		return "", err
	}

	feed, err := jsonparser.GetString(body, "results", "[0]", "feedUrl")
	if err != nil || feed == "" {
		return "", fmt.Errorf("%s: %w", query, ErrNoFeed)
	}

	if err := cache.Write(k, lookup{FeedURL: feed}); err != nil {
		log.Warnf("itunes: cache: %v", err)
	}

	return feed, nil
}

type Source struct {
	scrape.Base
	Directory *Directory
}

func New(url, program string) source.Source {
	s := &Source{Base: scrape.NewBase(url, program, "")}
	s.Directory = NewDirectory(s.Session)
	return s
}

// Episodes reads the newest items of the feed the directory points at.
// Apple Podcasts URLs are looked up by id, anything else by program name.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	var id string
	if m := podcastID.FindStringSubmatch(s.Listing); m != nil {
		id = m[1]
	}

	feedURL, err := s.Directory.FeedURL(ctx, id, s.Program)
	if err != nil {
		return nil, err
	}

	feed, err := s.FetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	return s.FeedEpisodes(feed, limit, s.Program, false, false), nil
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(ctx context.Context, url string) string {
		return s.AudioFromPage(ctx, url)
	})
}
