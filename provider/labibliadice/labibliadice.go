// Package labibliadice scrapes Una Pausa en tu Vida from labibliadice.org.
package labibliadice

import (
	"context"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/samber/lo"
)

const Program = "Una Pausa en tu Vida"

var (
	sections   = regexp.MustCompile(`(?i)pausa|episode|programa`)
	listenText = regexp.MustCompile(`(?i)escuchar|reproducir|play`)
	currentTxt = regexp.MustCompile(`(?i)actual|hoy|today|current`)
)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program)}
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	for _, strategy := range []func(*goquery.Document) []*source.Episode{
		s.fromSections,
		s.fromCurrent,
		s.fromAnyAudio,
	} {
		if episodes := strategy(doc); len(episodes) > 0 {
			return episodes, nil
		}
	}

	return nil, nil
}

func (s *Source) fromSections(doc *goquery.Document) []*source.Episode {
	var episodes []*source.Episode
	titled := func(title string) bool {
		return lo.ContainsBy(episodes, func(ep *source.Episode) bool { return ep.Title == title })
	}

	doc.Find("div[class], section[class], article[class]").Each(func(_ int, sec *goquery.Selection) {
		if !sections.MatchString(sec.AttrOr("class", "")) {
			return
		}

		title := scrape.Heading(sec, "h1, h2, h3, h4")
		if title == "" || titled(title) {
			return
		}

		if src := scrape.FirstAudio(sec, nil); src != "" {
			episodes = append(episodes, s.Episode(title, scrape.NormalizeURL(s.Listing, src), ""))
			return
		}

		if href := scrape.FirstLink(sec, "a[href]", scrape.LinkWithExt(scrape.AudioTypes...)); href != "" {
			episodes = append(episodes, s.Episode(title, scrape.NormalizeURL(s.Listing, href), ""))
			return
		}

		listen := scrape.FirstLink(sec, "a[href]", func(_ string, a *goquery.Selection) bool {
			return listenText.MatchString(a.Text())
		})
		if listen != "" {
			episodes = append(episodes, s.Episode(title, "", scrape.NormalizeURL(s.Listing, listen)))
		}
	})

	return episodes
}

// fromCurrent looks next to a block announcing today's pause.
func (s *Source) fromCurrent(doc *goquery.Document) []*source.Episode {
	var found string

	doc.Find("div, section").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		if block.Children().Length() > 0 || !currentTxt.MatchString(block.Text()) {
			return true
		}

		parent := block.Parent()
		found = scrape.FirstAudio(parent, nil)
		if found == "" {
			found = scrape.FirstLink(parent, "a[href]", scrape.LinkWithExt(scrape.AudioTypes...))
		}
		return found == ""
	})

	if found == "" {
		return nil
	}

	return []*source.Episode{s.Episode(Program+" - Actual", scrape.NormalizeURL(s.Listing, found), "")}
}

func (s *Source) fromAnyAudio(doc *goquery.Document) []*source.Episode {
	var episodes []*source.Episode

	doc.Find("audio[src], source[src]").Each(func(i int, el *goquery.Selection) {
		if src := el.AttrOr("src", ""); scrape.HasExt(src, scrape.AudioTypes...) {
			title := fmt.Sprintf("%s %d", Program, i+1)
			episodes = append(episodes, s.Episode(title, scrape.NormalizeURL(s.Listing, src), ""))
		}
	})

	return episodes
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(ctx context.Context, url string) string {
		return s.AudioFromPage(ctx, url)
	})
}
