// Package bibleproject scrapes the Spanish BibleProject podcast on proyectobiblia.com.
package bibleproject

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/util"
)

const (
	Program = "Bible Project Español"
	Listing = "https://proyectobiblia.com/podcasts/bibleproject-espanol/"
	limit   = 5
)

var (
	episodePath = regexp.MustCompile(`/podcast/[^/]+/`)
	simplecast  = regexp.MustCompile(`https://[^"\s'<>]*simplecastaudio\.com[^"\s'<>]*\.mp3[^"\s'<>]*`)
	anyMP3      = regexp.MustCompile(`https://[^"\s'<>]+\.mp3[^"\s'<>]*`)
)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	if url == "" {
		url = Listing
	}
	return &Source{Base: scrape.NewBase(url, program, Program)}
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	var episodes []*source.Episode
	seen := make(map[string]bool)

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := a.AttrOr("href", "")
		if !episodePath.MatchString(href) || seen[href] {
			return true
		}
		seen[href] = true

		link := scrape.NormalizeURL(s.Listing, href)
		episodes = append(episodes, s.Episode(title(a, link), "", link))
		return len(episodes) < limit
	})

	return episodes, nil
}

// title prefers the link text, then a heading of the enclosing card, then the slug.
func title(a *goquery.Selection, link string) string {
	if text := scrape.Clean(a.Text()); len([]rune(text)) >= 3 {
		return text
	}

	if heading := scrape.Heading(a.Closest("div, article, section"), "h2, h3, h4, h5"); heading != "" {
		return heading
	}

	slug := path.Base(strings.TrimRight(link, "/"))
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		words[i] = util.Capitalize(w)
	}
	return strings.Join(words, " ")
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, s.fromEpisodePage)
}

func (s *Source) fromEpisodePage(ctx context.Context, url string) string {
	doc, body, err := s.Document(ctx, url)
	if err != nil {
		log.Warnf("bibleproject: episode page: %v", err)
		return ""
	}

	if audio := simplecast.FindString(string(body)); audio != "" {
		return audio
	}

	if src := scrape.FirstAudio(doc.Selection, scrape.WithExt(scrape.MP3Only...)); src != "" {
		return src
	}

	if href := scrape.FirstLink(doc.Selection, "a[download]", scrape.LinkWithExt(scrape.MP3Only...)); href != "" {
		return href
	}

	return anyMP3.FindString(string(body))
}
