// Package ligonier scrapes Renovando tu Mente on es.ligonier.org.
package ligonier

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program = "Renovando tu Mente"
	limit   = 5
)

var (
	podtrac    = regexp.MustCompile(`//dts\.podtrac\.com[^"'\s)}\]]*`)
	podtracMP3 = regexp.MustCompile(`//dts\.podtrac\.com/redirect\.mp3/[^"'\s]*\.mp3`)
	libsynMP3  = regexp.MustCompile(`traffic\.libsyn\.com/[^"'\s]*\.mp3`)
	sections   = regexp.MustCompile(`(?i)episode|programa|archive`)
	listenText = regexp.MustCompile(`(?i)escuchar|play|audio`)
)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	s := &Source{Base: scrape.NewBase(url, program, Program)}
	s.Fingerprinted()
	s.Headers(map[string]string{
		"Referer":            "https://es.ligonier.org/",
		"DNT":                "1",
		"Sec-GPC":            "1",
		"Sec-Ch-Ua":          `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`,
		"Sec-Ch-Ua-Mobile":   "?0",
		"Sec-Ch-Ua-Platform": `"Windows"`,
		"Cache-Control":      "no-cache",
		"Pragma":             "no-cache",
	})
	return s
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	var episodes []*source.Episode
	doc.Find(`div#Content[role="main"] div.column_portfolio li.portfolio-item`).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		href := item.Find("a[href]").First().AttrOr("href", "")
		if !strings.Contains(href, "/rtm/") {
			return true
		}

		title := scrape.Heading(item, "h1, h2, h3, h4, h5, h6")
		if title == "" {
			title = Program
		}

		episodes = append(episodes, s.Episode(title, "", scrape.NormalizeURL(s.Listing, href)))
		return len(episodes) < limit
	})

	if len(episodes) > 0 {
		return episodes, nil
	}

	return s.fromSections(doc), nil
}

// fromSections is used when the portfolio grid is missing.
func (s *Source) fromSections(doc *goquery.Document) []*source.Episode {
	var episodes []*source.Episode

	doc.Find("div[class], article[class], section[class]").Each(func(_ int, sec *goquery.Selection) {
		if !sections.MatchString(sec.AttrOr("class", "")) {
			return
		}

		title := scrape.Heading(sec, "h1, h2, h3, h4")
		if title == "" {
			return
		}

		href := scrape.FirstLink(sec, "a[href]", scrape.LinkWithExt(scrape.AudioTypes...))
		if href == "" {
			href = scrape.FirstLink(sec, "a[href]", func(_ string, a *goquery.Selection) bool {
				return listenText.MatchString(a.Text())
			})
		}
		if href == "" {
			return
		}

		episodes = append(episodes, s.Episode(title, "", scrape.NormalizeURL(s.Listing, href)))
	})

	return scrape.Limit(episodes, limit)
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, s.fromEpisodePage)
}

func (s *Source) fromEpisodePage(ctx context.Context, url string) string {
	doc, body, err := s.Document(ctx, url)
	if err != nil {
		log.Warnf("ligonier: episode page: %v", err)
		return ""
	}

	if m := podtrac.Find(body); m != nil {
		return "https:" + string(m)
	}

	if src := scrape.FirstAudio(doc.Selection, scrape.WithExt(scrape.MP3Only...)); src != "" {
		return scrape.NormalizeURL(url, src)
	}

	if src := scrape.FirstAudio(doc.Selection, nil); src != "" {
		return scrape.NormalizeURL(url, src)
	}

	if href := scrape.FirstLink(doc.Selection, "a[href]", scrape.LinkWithExt(scrape.MP3Only...)); href != "" {
		return scrape.NormalizeURL(url, href)
	}

	switch m := scrape.FirstMatch(scrape.Scripts(doc.Selection), nil, podtracMP3, libsynMP3); {
	case m == "":
		return ""
	case strings.HasPrefix(m, "//"):
		return "https:" + m
	default:
		return "https://" + m
	}
}
