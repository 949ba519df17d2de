// Package twr360 scrapes program pages on twr360.org.
package twr360

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const Program = "TWR360"

var (
	scriptSrc  = regexp.MustCompile(`src:\s*['"]([^'"]*\.mp3[^'"]*)['"]`)
	quotedMP3  = regexp.MustCompile(`['"](https?://[^'"]*\.mp3[^'"]*)['"]`)
	episodeID  = regexp.MustCompile(`/id,(\d+)/`)
	listenWord = regexp.MustCompile(`(?i)escuchar`)
)

type Source struct {
	scrape.Base
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program)}
}

// Episodes lists the headline links that point at an episode view.
func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	doc, _, err := s.Document(ctx, s.Listing)
	if err != nil {
		return nil, err
	}

	var episodes []*source.Episode
	doc.Find("h1 > a[href]").Each(func(_ int, a *goquery.Selection) {
		title := scrape.Clean(a.Text())
		link := scrape.NormalizeURL(s.Listing, a.AttrOr("href", ""))

		if title != "" && strings.Contains(link, "/programs/view/id,") {
			episodes = append(episodes, s.Episode(title, "", link))
		}
	})

	return episodes, nil
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, s.fromEpisodePage)
}

func (s *Source) fromEpisodePage(ctx context.Context, episodeURL string) string {
	doc, _, err := s.Document(ctx, episodeURL)
	if err != nil {
		log.Warnf("twr360: episode page: %v", err)
		return ""
	}

	audioPage := scrape.FirstLink(doc.Selection, "a[href]", func(href string, a *goquery.Selection) bool {
		return listenWord.MatchString(a.Text()) && strings.Contains(href, "action,audio")
	})

	if audioPage != "" {
		if audio := s.fromAudioPage(ctx, scrape.NormalizeURL(episodeURL, audioPage)); audio != "" {
			return audio
		}
	}

	m := episodeID.FindStringSubmatch(episodeURL)
	if m == nil {
		return ""
	}

	prefix, _, _ := strings.Cut(episodeURL, "/programs/view")
	direct := prefix + "/programs/view/id," + m[1] + "/action,audio/lang,2"

	doc, _, err = s.Document(ctx, direct)
	if err != nil {
		return ""
	}

	if src := doc.Find("audio[src]").First().AttrOr("src", ""); strings.Contains(src, ".mp3") {
		return src
	}

	return ""
}

func (s *Source) fromAudioPage(ctx context.Context, url string) string {
	doc, _, err := s.Document(ctx, url)
	if err != nil {
		log.Warnf("twr360: audio page: %v", err)
		return ""
	}

	if src := scrape.FirstAudio(doc.Selection, scrape.WithExt(scrape.MP3Only...)); src != "" {
		return src
	}

	return scrape.FirstMatch(scrape.Scripts(doc.Selection), nil, scriptSrc, quotedMP3)
}
