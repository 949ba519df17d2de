// Package semillas scrapes the daily program of semillasalaire.com.ar.
package semillas

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program = "Semillas al Aire"
	title   = "Programa del Día"
)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program)}
}

// Episodes returns the single player on the home page.
// The Sonaar player keeps the file in data-audiopath.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	isMP3 := scrape.WithExt(scrape.MP3Only...)

	strategies := []func() string{
		func() string {
			player := doc.Find("audio.sonaar_media_element").First()
			if path := player.AttrOr("data-audiopath", ""); path != "" {
				return path
			}
			return player.AttrOr("src", "")
		},
		func() string {
			var found string
			doc.Find("[data-audiopath]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
				if path := el.AttrOr("data-audiopath", ""); isMP3(path) {
					found = path
				}
				return found == ""
			})
			return found
		},
		func() string {
			var found string
			doc.Find("audio[src]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
				if src := el.AttrOr("src", ""); isMP3(src) {
					found = src
				}
				return found == ""
			})
			return found
		},
	}

	for _, strategy := range strategies {
		if src := strategy(); isMP3(src) {
			return []*source.Episode{s.Episode(title, scrape.NormalizeURL(s.Listing, src), "")}, nil
		}
	}

	return nil, nil
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(ctx context.Context, url string) string {
		return s.AudioFromPage(ctx, url, scrape.MP3Only...)
	})
}
