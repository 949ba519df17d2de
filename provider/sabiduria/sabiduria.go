// Package sabiduria reads the podcast player data embedded in sabiduriainternacional.org.
package sabiduria

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program      = "Sabiduría Internacional"
	defaultTitle = "Programa del Día"
	audioHost    = "podbean.com"
)

var playerData = regexp.MustCompile(`(?s)var podcastPlayerData = (\{.*?\});`)

// errFound stops the jsonparser walk early.
var errFound = errors.New("found")

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	s := &Source{Base: scrape.NewBase(url, program, Program)}
	s.Headers(map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9,es;q=0.8",
		"Cache-Control":   "no-cache",
		"Pragma":          "no-cache",
	})
	return s
}

// Episodes returns the first podbean episode of the embedded player.
// Episodes are large files, so only one is taken.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	body, err := s.Page(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	ep := s.parse(body)
	if ep == nil {
		return nil, nil
	}

	return []*source.Episode{ep}, nil
}

func (s *Source) parse(body []byte) *source.Episode {
	m := playerData.FindSubmatch(body)
	if m == nil {
		return nil
	}

	var found *source.Episode

	err := jsonparser.ObjectEach(m[1], func(key, podcast []byte, kind jsonparser.ValueType, _ int) error {
		if kind != jsonparser.Object || !strings.HasPrefix(string(key), "pp-podcast") {
			return nil
		}

		return jsonparser.ObjectEach(podcast, func(key, entry []byte, kind jsonparser.ValueType, _ int) error {
			if kind != jsonparser.Object || !strings.HasPrefix(string(key), "ppe-") {
				return nil
			}

			src, _ := jsonparser.GetString(entry, "src")
			if src == "" || !strings.Contains(src, audioHost) {
				return nil
			}

			title, _ := jsonparser.GetString(entry, "title")
			if title = scrape.Clean(title); title == "" {
				title = defaultTitle
			}

			found = s.Episode(title, scrape.NormalizeURL(s.Listing, src), "")
			found.LargeFile = true
			return errFound
		})
	})

	if err != nil && !errors.Is(err, errFound) {
		log.Warnf("sabiduria: player data: %v", err)
	}

	return found
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(ctx context.Context, url string) string {
		return s.AudioFromPage(ctx, url)
	})
}
