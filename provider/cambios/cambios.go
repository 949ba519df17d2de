// Package cambios finds the daily devotional of Cambios Profundos.
// When nothing is published it yields a simulated episode that is rendered as a placeholder file.
package cambios

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program    = "Cambios Profundos"
	mediaQuery = "/wp-json/wp/v2/media?per_page=20&order=desc&search=devocional"
	days       = 7
)

var pageMP3 = regexp.MustCompile(`https?://[^\s"'<>]*\.mp3`)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program)}
}

func (s *Source) origin() string {
	if origin := scrape.Origin(s.Listing); origin != "" {
		return origin
	}
	return "https://cambiosprofundos.com"
}

// Episodes always returns exactly one episode.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	for _, strategy := range []func(context.Context) *source.Episode{
		s.fromMediaAPI,
		s.fromUploads,
		s.fromPage,
	} {
		if ep := strategy(ctx); ep != nil {
			return []*source.Episode{ep}, nil
		}
	}

	return []*source.Episode{s.simulated()}, nil
}

func (s *Source) fromMediaAPI(ctx context.Context) *source.Episode {
	body, err := s.Page(ctx, s.origin()+mediaQuery)
	if err != nil {
		log.Debugf("cambios: media api: %v", err)
		return nil
	}

	var found *source.Episode
	_, err = jsonparser.ArrayEach(body, func(media []byte, _ jsonparser.ValueType, _ int, _ error) {
		if found != nil {
			return
		}

		mime, _ := jsonparser.GetString(media, "mime_type")
		url, _ := jsonparser.GetString(media, "source_url")
		if !strings.HasPrefix(mime, "audio/") || url == "" {
			return
		}

		title, _ := jsonparser.GetString(media, "title", "rendered")
		if title = scrape.Clean(title); title == "" {
			title = "Devocional"
		}

		found = s.Episode(title, url, "")
	})

	if err != nil {
		log.Warnf("cambios: media api: %v", err)
	}

	return found
}

func (s *Source) fromUploads(ctx context.Context) *source.Episode {
	uploads := s.origin() + "/wp-content/uploads"

	for _, day := range scrape.DaysBack(s.Today(), days) {
		date := day.Format(time.DateOnly)
		month := day.Format("2006/01")

		for _, url := range []string{
			fmt.Sprintf("%s/%s/devocional-%s.mp3", uploads, month, date),
			fmt.Sprintf("%s/%s/cambios-%s.mp3", uploads, month, date),
			fmt.Sprintf("%s/audio/devocional-%s.mp3", uploads, date),
		} {
			if s.Probe(ctx, url, scrape.ProbeMedium) {
				return s.Episode("Devocional del día "+date, url, "")
			}
		}
	}

	return nil
}

func (s *Source) fromPage(ctx context.Context) *source.Episode {
	body, err := s.Page(ctx, s.Listing)
	if err != nil {
		log.Warnf("cambios: listing: %v", err)
		return nil
	}

	live := func(url string) bool { return s.Probe(ctx, url, scrape.ProbeMedium) }
	if url := scrape.FirstMatch(string(body), live, pageMP3); url != "" {
		return s.Episode("Devocional de Cambios Profundos", url, "")
	}

	return nil
}

func (s *Source) simulated() *source.Episode {
	ep := s.Episode("Devocional del día "+s.Today().Format(time.DateOnly), source.PlaceholderURL, "")
	ep.Simulated = true
	return ep
}

// AudioURL gives simulated episodes one more chance at a real file before settling for the placeholder.
func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	if !ep.Simulated {
		return s.Resolve(ctx, ep, func(ctx context.Context, url string) string {
			return s.AudioFromPage(ctx, url)
		})
	}

	origin := s.origin()
	for _, url := range []string{
		fmt.Sprintf("%s/wp-content/uploads/%s/devocional.mp3", origin, s.Today().Format("2006/01")),
		origin + "/wp-content/uploads/audio/devocional.mp3",
		origin + "/devocional.mp3",
	} {
		if s.Probe(ctx, url, scrape.ProbeMedium) {
			return url, nil
		}
	}

	return source.PlaceholderURL, nil
}
