// Package crianza scrapes the podcast archive of Crianza Reverente.
package crianza

import (
	"context"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const Program = "Crianza Reverente"

var sections = regexp.MustCompile(`(?i)episode|podcast|post|crianza`)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	s := &Source{Base: scrape.NewBase(url, program, Program)}
	s.Fingerprinted()
	s.Headers(map[string]string{
		"Referer":            "https://crianzareverente.com/",
		"DNT":                "1",
		"Sec-GPC":            "1",
		"Sec-Ch-Ua":          `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`,
		"Sec-Ch-Ua-Mobile":   "?0",
		"Sec-Ch-Ua-Platform": `"Windows"`,
	})
	return s
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	articles := doc.Find(`div.et_pb_ajax_pagination_container article[class*="type-podcast"]`)
	if articles.Length() == 0 {
		articles = doc.Find(`article[class*="type-podcast"]`)
	}

	var episodes []*source.Episode
	articles.Each(func(_ int, article *goquery.Selection) {
		title := scrape.Heading(article, "h1, h2, h3, h4")
		src := article.Find("audio source[src]").First().AttrOr("src", "")

		if title != "" && scrape.HasExt(src, scrape.AudioTypes...) {
			episodes = append(episodes, s.Episode(title, scrape.NormalizeURL(s.Listing, src), ""))
		}
	})

	if len(episodes) > 0 {
		return episodes, nil
	}

	return s.fromSections(doc), nil
}

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

		var src string
		if sec.Find("audio").Length() > 0 {
			src = scrape.FirstAudio(sec, nil)
		} else {
			src = scrape.FirstLink(sec, "a[href]", scrape.LinkWithExt(scrape.AudioTypes...))
		}

		if src != "" {
			episodes = append(episodes, s.Episode(title, scrape.NormalizeURL(s.Listing, src), ""))
		}
	})

	return scrape.UniqueBy(episodes, func(ep *source.Episode) string { return ep.AudioURL })
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(ctx context.Context, url string) string {
		return s.AudioFromPage(ctx, url)
	})
}
