package scrape

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/radiodl-cli/radiodl/source"
	"golang.org/x/net/html/charset"
)

// Feed is the subset of an RSS 2.0 podcast feed the scrapers use.
type Feed struct {
	XMLName xml.Name    `xml:"rss"`
	Channel FeedChannel `xml:"channel"`
}

// FeedChannel represents rss channel data.
type FeedChannel struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	Description string     `xml:"description"`
	Language    string     `xml:"language"`
	Items       []FeedItem `xml:"item"`
}

// FeedItem represents rss item data.
type FeedItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	GUID        string        `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Duration    string        `xml:"duration"`
	Enclosure   FeedEnclosure `xml:"enclosure"`
}

// FeedEnclosure represents rss item enclosure data.
type FeedEnclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// ParseFeed decodes an RSS document, honouring its declared encoding.
func ParseFeed(data []byte) (*Feed, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Strict = false

	var feed Feed
	if err := decoder.Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	return &feed, nil
}

// FetchFeed GETs and parses the feed at url.
func (b *Base) FetchFeed(ctx context.Context, url string) (*Feed, error) {
	body, err := b.Page(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseFeed(body)
}

// IsAudio reports whether the enclosure announces an audio type.
func (e FeedEnclosure) IsAudio() bool {
	return e.URL != "" && strings.HasPrefix(strings.ToLower(e.Type), "audio/")
}

// AudioURL returns the enclosure URL, or a link that looks like audio.
// When audioTypeOnly is set only audio/* enclosures count.
func (i FeedItem) AudioURL(audioTypeOnly bool) string {
	if i.Enclosure.URL != "" && (!audioTypeOnly || i.Enclosure.IsAudio()) {
		return strings.TrimSpace(i.Enclosure.URL)
	}

	link := strings.TrimSpace(i.Link)
	if strings.Contains(strings.ToLower(link), ".mp3") || strings.Contains(strings.ToLower(link), ".m4a") {
		return link
	}

	return ""
}

// Published parses the pubDate in the layouts feeds use in practice.
func (i FeedItem) Published() *time.Time {
	raw := strings.TrimSpace(i.PubDate)
	if raw == "" {
		return nil
	}

	for _, layout := range []string{
		time.RFC1123Z,
		time.RFC1123,
		"Mon, 2 Jan 2006 15:04:05 -0700",
		"Mon, 2 Jan 2006 15:04:05 MST",
		"2 Jan 2006 15:04:05 -0700",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	return nil
}

// ParseDuration accepts itunes:duration values: seconds, MM:SS or HH:MM:SS.
func ParseDuration(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	var total int
	for _, part := range strings.Split(raw, ":") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0
		}
		total = total*60 + n
	}

	return time.Duration(total) * time.Second
}

// FeedEpisodes turns up to limit items into episodes.
// Items with an audio URL carry it; the rest keep their link as listen page
// when keepLinks is set and are dropped otherwise.
func (b *Base) FeedEpisodes(feed *Feed, limit int, defaultTitle string, audioTypeOnly, keepLinks bool) []*source.Episode {
	var episodes []*source.Episode

	for _, item := range Limit(feed.Channel.Items, limit) {
		title := Clean(item.Title)
		if title == "" {
			title = defaultTitle
		}

		ep := b.Episode(title, item.AudioURL(audioTypeOnly), "")
		ep.Duration = ParseDuration(item.Duration)
		ep.Published = item.Published()

		if !ep.Resolved() {
			if !keepLinks || strings.TrimSpace(item.Link) == "" {
				continue
			}
			ep.ListenURL = strings.TrimSpace(item.Link)
		}

		episodes = append(episodes, ep)
	}

	return episodes
}
