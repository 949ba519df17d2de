// Package camino scrapes Reflexión para hoy from El Camino de la Vida.
package camino

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program      = "El Camino de la Vida"
	defaultTitle = "Reflexión para hoy"
	media        = "https://medios.elcaminodelavida.org"
	limit        = 5
	days         = 7
)

var (
	mediosMP3    = regexp.MustCompile(`https?://medios\.elcaminodelavida\.org/[^"\s']*\.mp3`)
	caminoMP3    = regexp.MustCompile(`https?://[^"\s']*elcaminodelavida[^"\s']*\.mp3`)
	scriptMP3    = regexp.MustCompile(`https?://[^"']*elcaminodelavida[^"']*\.mp3`)
	downloadText = regexp.MustCompile(`(?i)descargar|download|mp3`)
	numericPath  = regexp.MustCompile(`/(\d{4})/(\d{1,2})/(\d+)/`)
	slugPath     = regexp.MustCompile(`/(\d{4})/(\d{1,2})/([^/]+)/`)
)

type Source struct {
	scrape.Base

	// media is the host audio files are served from.
	media string
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program), media: media}
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	if feed, err := s.FetchFeed(ctx, s.Listing); err == nil {
		if episodes := s.FeedEpisodes(feed, limit, defaultTitle, true, true); len(episodes) > 0 {
			return episodes, nil
		}
	} else {
		log.Debugf("camino: listing is not a feed: %v", err)
	}

	if episodes := s.fromEmber(ctx); len(episodes) > 0 {
		return episodes, nil
	}

	return s.fromDates(ctx), nil
}

func (s *Source) fromEmber(ctx context.Context) []*source.Episode {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		log.Warnf("camino: listing: %v", err)
		return nil
	}

	var episodes []*source.Episode
	doc.Find(`div[id^="ember"].kit-list-item`).EachWithBreak(func(_ int, div *goquery.Selection) bool {
		href := div.Find("a[href]").First().AttrOr("href", "")
		if href == "" {
			return true
		}

		title := scrape.Heading(div, "h1, h2, h3, h4, span")
		if title == "" {
			title = fmt.Sprintf("Episodio %d", len(episodes)+1)
		}

		episodes = append(episodes, s.Episode(title, "", scrape.NormalizeURL(s.Listing, href)))
		return len(episodes) < limit
	})

	return episodes
}

// fromDates probes the date archives of the last week.
func (s *Source) fromDates(ctx context.Context) []*source.Episode {
	origin := scrape.Origin(s.Listing)

	var episodes []*source.Episode
	for _, day := range scrape.DaysBack(s.Today(), days) {
		path := day.Format("2006/01/02")
		for _, url := range []string{
			origin + "/" + path + "/",
			origin + "/reflexion/" + path + "/",
		} {
			if s.Probe(ctx, url, scrape.ProbeMedium) {
				episodes = append(episodes, s.Episode("Reflexión del "+scrape.DMY(day), "", url))
				break
			}
		}

		if len(episodes) >= limit {
			break
		}
	}

	return episodes
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, s.fromEpisodePage)
}

func (s *Source) fromEpisodePage(ctx context.Context, url string) string {
	doc, body, err := s.Document(ctx, url)
	if err != nil {
		log.Warnf("camino: episode page: %v", err)
		return s.fromPattern(ctx, url)
	}

	if href := scrape.FirstLink(doc.Selection, "a[download]", scrape.LinkWithExt(scrape.MP3Only...)); href != "" {
		return scrape.NormalizeURL(url, href)
	}

	if audio := scrape.FirstMatch(string(body), nil, mediosMP3, caminoMP3); audio != "" {
		return audio
	}

	if src := scrape.FirstAudio(doc.Selection, scrape.WithExt(scrape.MP3Only...)); src != "" {
		return scrape.NormalizeURL(url, src)
	}

	href := scrape.FirstLink(doc.Selection, "a[href]", func(href string, a *goquery.Selection) bool {
		return downloadText.MatchString(a.Text()) && strings.Contains(href, ".mp3")
	})
	if href != "" {
		return scrape.NormalizeURL(url, href)
	}

	if audio := scrape.FirstMatch(scrape.Scripts(doc.Selection), nil, scriptMP3); audio != "" {
		return audio
	}

	return s.fromPattern(ctx, url)
}

// fromPattern builds the file name from the episode URL.
// Numeric ids fall back to the usual WEB-RPH location even when no probe answers.
func (s *Source) fromPattern(ctx context.Context, url string) string {
	if m := numericPath.FindStringSubmatch(url); m != nil {
		year, month, id := m[1], twoDigits(m[2]), m[3]
		candidates := []string{
			fmt.Sprintf("%s/audio/WEB-RPH/WEB-RPH%s/RPH%s-WEB.mp3", s.media, month, id),
			fmt.Sprintf("%s/audio/WEB-RPH/WEB-RPH%s/RPH%s.mp3", s.media, month, id),
			fmt.Sprintf("%s/audio/%s/%s/RPH%s-WEB.mp3", s.media, year, month, id),
			fmt.Sprintf("%s/audio/%s/%s/RPH%s.mp3", s.media, year, month, id),
			fmt.Sprintf("%s/programas/RPH%s.mp3", s.media, id),
		}

		if found := s.firstLive(ctx, candidates); found != "" {
			return found
		}

		log.Warnf("camino: no template answered for %s, using %s", url, candidates[0])
		return candidates[0]
	}

	if m := slugPath.FindStringSubmatch(url); m != nil {
		year, month, slug := m[1], twoDigits(m[2]), m[3]
		return s.firstLive(ctx, []string{
			fmt.Sprintf("%s/audio/WEB-RPH/WEB-RPH%s/%s.mp3", s.media, month, slug),
			fmt.Sprintf("%s/audio/%s/%s/%s.mp3", s.media, year, month, slug),
		})
	}

	return ""
}

func (s *Source) firstLive(ctx context.Context, candidates []string) string {
	for _, url := range candidates {
		if s.Probe(ctx, url, scrape.ProbeLong) {
			return url
		}
	}
	return ""
}

func twoDigits(month string) string {
	n, err := strconv.Atoi(month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%02d", n)
}
