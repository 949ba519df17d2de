// Package vision scrapes Visión para Vivir, whose daily audio lives on the Insight for Living CDN.
package vision

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/samber/lo"
)

const (
	Program      = "Visión para Vivir"
	defaultTitle = "Programa del Día"
	cdn          = "https://insightforliving.swncdn.com/International/VPV/NA/Media/MP3"
	keep         = 1
	maxPageDays  = 5
)

var (
	cdnMP3    = regexp.MustCompile(`https?://insightforliving\.swncdn\.com[^"\s']*\.mp3`)
	swncdnMP3 = regexp.MustCompile(`https?://[^"\s']*swncdn\.com[^"\s']*\.mp3`)
	scriptMP3 = regexp.MustCompile(`https?://[^"\s']*\.mp3`)
	isoDate   = regexp.MustCompile(`20\d{2}-\d{1,2}-\d{1,2}`)
)

type Source struct {
	scrape.Base

	// cdn is the directory daily files are published under.
	cdn string
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program), cdn: cdn}
}

func (s *Source) feedURL() string {
	origin := scrape.Origin(s.Listing)
	if origin == "" {
		origin = "https://visionparavivir.org"
	}
	return origin + "/feed/"
}

func (s *Source) dailyURL(day string) string {
	return fmt.Sprintf("%s/VPV%s-Podcast.mp3", s.cdn, day)
}

// Episodes keeps only the newest episode: feed first, then the listing page, then today's file.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	if episodes := s.fromFeed(ctx); len(episodes) > 0 {
		return scrape.Limit(episodes, keep), nil
	}

	if episodes := s.fromPage(ctx); len(episodes) > 0 {
		return scrape.Limit(episodes, keep), nil
	}

	today := s.Today()
	if audio := s.dailyURL(today.Format(time.DateOnly)); s.Probe(ctx, audio, scrape.ProbeLong) {
		return []*source.Episode{s.Episode("Programa del día "+scrape.DMY(today), audio, "")}, nil
	}

	return nil, nil
}

func (s *Source) fromFeed(ctx context.Context) []*source.Episode {
	feed, err := s.FetchFeed(ctx, s.feedURL())
	if err != nil {
		log.Warnf("vision: feed: %v", err)
		return nil
	}

	return s.FeedEpisodes(feed, 5, defaultTitle, true, true)
}

func (s *Source) fromPage(ctx context.Context) []*source.Episode {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		log.Warnf("vision: listing: %v", err)
		return nil
	}

	var episodes []*source.Episode
	doc.Find(`div[id^="ember"].app-link-to`).EachWithBreak(func(_ int, div *goquery.Selection) bool {
		a := div.Find(`a[id^="ember"].ember-view`).First()
		href := a.AttrOr("href", "")
		if href == "" {
			return true
		}

		title := scrape.Clean(a.Text())
		if title == "" {
			title = scrape.Heading(div.Parent(), "h1, h2, h3, h4, span")
		}
		if title == "" {
			title = fmt.Sprintf("Programa %d", len(episodes)+1)
		}

		episodes = append(episodes, s.Episode(title, "", scrape.NormalizeURL(s.Listing, href)))
		return len(episodes) < 5
	})

	return episodes
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, s.fromEpisodePage)
}

func (s *Source) fromEpisodePage(ctx context.Context, url string) string {
	doc, body, err := s.Document(ctx, url)
	if err != nil {
		log.Warnf("vision: episode page: %v", err)
		return ""
	}

	if href := scrape.FirstLink(doc.Selection, `a[download][target="_blank"]`, scrape.LinkWithExt(scrape.MP3Only...)); href != "" {
		return href
	}

	if audio := scrape.FirstMatch(string(body), nil, cdnMP3, swncdnMP3); audio != "" {
		return audio
	}

	onCDN := func(u string) bool {
		return strings.Contains(u, "insightforliving") || strings.Contains(u, "swncdn")
	}
	if audio := scrape.FirstMatch(scrape.Scripts(doc.Selection), onCDN, scriptMP3); audio != "" {
		return audio
	}

	if href := scrape.FirstLink(doc.Selection, `div[id^="ember"] a[download][href*=".mp3"]`, nil); href != "" {
		return href
	}

	return s.fromDates(ctx, string(body))
}

// fromDates probes the CDN for the dates mentioned on the page, newest first, then today.
func (s *Source) fromDates(ctx context.Context, body string) string {
	dates := lo.Uniq(isoDate.FindAllString(body, -1))
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	candidates := append(scrape.Limit(dates, maxPageDays), s.Today().Format(time.DateOnly))
	for _, day := range lo.Uniq(candidates) {
		audio := s.dailyURL(day)
		if s.Probe(ctx, audio, scrape.ProbeLong) {
			return audio
		}
		log.Debugf("vision: %s not published", audio)
	}

	return ""
}
