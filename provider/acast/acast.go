// Package acast scrapes shows hosted on Acast, Temas Bíblicos by default.
package acast

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/buger/jsonparser"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/provider/itunes"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program     = "Temas Bíblicos"
	DefaultShow = "temas-biblicos"
	limit       = 5
)

var acastMP3 = regexp.MustCompile(`https://[^"\s]*\.acast\.com/[^"\s]*\.mp3[^"\s]*`)

type Source struct {
	scrape.Base
	Directory *itunes.Directory
}

func New(url, program string) source.Source {
	s := &Source{Base: scrape.NewBase(url, program, Program)}
	s.Directory = itunes.NewDirectory(s.Session)
	return s
}

// Show returns the show slug of an Acast URL.
func Show(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return DefaultShow
	}

	if slug, _, _ := strings.Cut(strings.Trim(u.Path, "/"), "/"); slug != "" {
		return slug
	}

	return DefaultShow
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	if strings.HasPrefix(scrape.Host(s.Listing), "feeds.") {
		return s.fromFeed(ctx, s.Listing)
	}

	if episodes := s.fromShow(ctx); len(episodes) > 0 {
		return episodes, nil
	}

	feedURL, err := s.Directory.FeedURL(ctx, "", s.Program)
	if err != nil {
		return nil, err
	}

	return s.fromFeed(ctx, feedURL)
}

func (s *Source) fromFeed(ctx context.Context, feedURL string) ([]*source.Episode, error) {
	feed, err := s.FetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return s.FeedEpisodes(feed, limit, s.Program, false, true), nil
}

// fromShow takes the newest episode of the show's episode list.
func (s *Source) fromShow(ctx context.Context) []*source.Episode {
	show := Show(s.Listing)
	listing := scrape.Origin(s.Listing) + "/" + show + "/episodes"

	doc, _, err := s.Document(ctx, listing)
	if err != nil {
		log.Warnf("acast: %v", err)
		return nil
	}

	a := doc.Find(`a[href*="/` + show + `/episodes/"]`).First()
	href := a.AttrOr("href", "")
	if href == "" {
		return nil
	}

	title := scrape.Heading(a, "h2")
	if title == "" {
		title = s.Program
	}

	return []*source.Episode{s.Episode(title, "", scrape.NormalizeURL(listing, href))}
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, s.fromEpisodePage)
}

func (s *Source) fromEpisodePage(ctx context.Context, page string) string {
	doc, body, err := s.Document(ctx, page)
	if err != nil {
		log.Warnf("acast: episode page: %v", err)
		return ""
	}

	if audio := doc.Find(`meta[property="og:audio"]`).AttrOr("content", ""); audio != "" {
		return scrape.NormalizeURL(page, audio)
	}

	if audio := linkedData(doc); audio != "" {
		return scrape.NormalizeURL(page, audio)
	}

	if src := doc.Find("audio[src]").First().AttrOr("src", ""); src != "" {
		return scrape.NormalizeURL(page, src)
	}

	return acastMP3.FindString(string(body))
}

// linkedData reads the media URL of a PodcastEpisode JSON-LD block.
func linkedData(doc *goquery.Document) string {
	var audio string

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, script *goquery.Selection) bool {
		data := []byte(script.Text())
		if kind, _ := jsonparser.GetString(data, "@type"); kind != "PodcastEpisode" {
			return true
		}

		audio, _ = jsonparser.GetString(data, "associatedMedia", "contentUrl")
		if audio == "" {
			audio, _ = jsonparser.GetString(data, "associatedMedia", "[0]", "contentUrl")
		}

		return audio == ""
	})

	return audio
}
