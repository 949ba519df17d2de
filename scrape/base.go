// Package scrape holds the pieces every program scraper is built from:
// a browser-like session, URL normalization, HTML and feed helpers, and probes.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/network"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/spf13/viper"
)

// DefaultProgram is used when neither the caller nor the site names the program.
const DefaultProgram = "Programa de Radio"

// Probe timeouts used by the date-guessing strategies.
const (
	ProbeShort  = 3 * time.Second
	ProbeMedium = 5 * time.Second
	ProbeLong   = 10 * time.Second
)

// Base is embedded by every site scraper.
type Base struct {
	Session *network.Session
	Program string
	Listing string

	// Now is the clock used by date-based strategies.
	Now func() time.Time
}

// NewBase builds a Base for listing. An empty program falls back to fallback,
// then to DefaultProgram.
func NewBase(listing, program, fallback string) Base {
	if program == "" {
		program = fallback
	}
	if program == "" {
		program = DefaultProgram
	}

	return Base{
		Session: network.NewSession(time.Duration(viper.GetInt(key.ScraperTimeout)) * time.Second),
		Program: program,
		Listing: listing,
		Now:     time.Now,
	}
}

// Name implements source.Source.
func (b *Base) Name() string {
	return b.Program
}

// URL implements source.Source.
func (b *Base) URL() string {
	return b.Listing
}

// Fingerprinted switches the session to the Chrome TLS transport when enabled in config.
func (b *Base) Fingerprinted() {
	if viper.GetBool(key.ScraperTLSFingerprint) {
		b.Session.Client = network.BrowserClient
	}
}

// Headers merges extra headers into the session.
func (b *Base) Headers(header map[string]string) {
	b.Session = b.Session.With(header)
}

// Page GETs url through the session.
func (b *Base) Page(ctx context.Context, url string) ([]byte, error) {
	return b.Session.Fetch(ctx, url)
}

// Document GETs url and parses it as HTML.
func (b *Base) Document(ctx context.Context, url string) (*goquery.Document, []byte, error) {
	body, err := b.Page(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", url, err)
	}

	return doc, body, nil
}

// Probe reports whether a HEAD on url answers 200.
func (b *Base) Probe(ctx context.Context, url string, timeout time.Duration) bool {
	return b.Session.Probe(ctx, url, timeout)
}

// Today returns the current local date at midnight.
func (b *Base) Today() time.Time {
	now := b.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Episode returns a descriptor stamped with the program and listing URL.
func (b *Base) Episode(title, audioURL, listenURL string) *source.Episode {
	return &source.Episode{
		Title:       title,
		Program:     b.Program,
		AudioURL:    audioURL,
		ListenURL:   listenURL,
		OriginalURL: b.Listing,
	}
}

// Resolve returns the episode's audio URL, or resolves its listen page with pageResolver.
func (b *Base) Resolve(ctx context.Context, ep *source.Episode, pageResolver func(ctx context.Context, url string) string) (string, error) {
	if ep.Resolved() {
		return ep.AudioURL, nil
	}

	if ep.ListenURL == "" {
		return "", source.ErrNoAudio
	}

	if audio := pageResolver(ctx, ep.ListenURL); audio != "" {
		return audio, nil
	}

	return "", source.ErrNoAudio
}
