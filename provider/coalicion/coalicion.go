// Package coalicion scrapes the Mujeres podcast of Coalición por el Evangelio.
package coalicion

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program      = "Coalición por el Evangelio"
	defaultTitle = "Podcast Mujeres"
	show         = "/podcasts/mujeres/"
	limit        = 5
)

var (
	pageMP3    = regexp.MustCompile(`https?://[^\s"'<>]*\.mp3`)
	dataSrcMP3 = regexp.MustCompile(`data-src="([^"]*\.mp3)"`)
)

// trusted reports whether url is served by the podcast's hosting.
func trusted(url string) bool {
	return strings.Contains(url, "media.blubrry.com") || strings.Contains(url, "thegospelcoalition.org")
}

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	s := &Source{Base: scrape.NewBase(url, program, Program)}
	s.Fingerprinted()
	s.Headers(map[string]string{
		"Referer":            "https://www.coalicionporelevangelio.org/",
		"DNT":                "1",
		"Sec-GPC":            "1",
		"Accept-Language":    "es-ES,es;q=0.9,en;q=0.8",
		"Sec-Ch-Ua":          `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`,
		"Sec-Ch-Ua-Mobile":   "?0",
		"Sec-Ch-Ua-Platform": `"Windows"`,
	})
	return s
}

func (s *Source) showURL() string {
	origin := scrape.Origin(s.Listing)
	if origin == "" {
		origin = "https://www.coalicionporelevangelio.org"
	}
	return origin + show
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	feed, err := s.FetchFeed(ctx, s.showURL()+"feed/")
	if err == nil {
		if episodes := s.FeedEpisodes(feed, limit, defaultTitle, true, true); len(episodes) > 0 {
			return episodes, nil
		}
	} else {
		log.Warnf("coalicion: feed: %v", err)
	}

	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	var episodes []*source.Episode
	doc.Find("div.episodes_wrapper div.single_episode").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		title := scrape.Heading(div, "h1, h2, h3, h4, h5")
		if title == "" {
			title = defaultTitle
		}

		if href := scrape.FirstLink(div, "a[href]", scrape.LinkWithExt(scrape.MP3Only...)); href != "" {
			episodes = append(episodes, s.Episode(title, scrape.NormalizeURL(s.Listing, href), ""))
		} else if href := div.Find("a[href]").First().AttrOr("href", ""); href != "" {
			episodes = append(episodes, s.Episode(title, "", scrape.NormalizeURL(s.Listing, href)))
		}

		return len(episodes) < limit
	})

	return episodes, nil
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, s.fromEpisodePage)
}

// fromEpisodePage visits the show page first so the episode page is served like a browsing session.
func (s *Source) fromEpisodePage(ctx context.Context, url string) string {
	warm, cancel, err := s.Session.Do(ctx, http.MethodGet, s.showURL(), scrape.ProbeLong)
	if err == nil {
		_ = warm.Body.Close()
		cancel()
	}

	body, err := s.Page(ctx, url)
	if err != nil {
		log.Warnf("coalicion: episode page: %v", err)
		return ""
	}

	if audio := scrape.FirstMatch(string(body), trusted, pageMP3); audio != "" {
		return audio
	}

	return scrape.FirstMatch(string(body), trusted, dataSrcMP3)
}
