package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// FirstAudio returns the src of the first <audio> element, or of a <source> inside one,
// that satisfies accept. A nil accept takes anything non-empty.
func FirstAudio(doc *goquery.Selection, accept func(string) bool) string {
	if accept == nil {
		accept = func(s string) bool { return s != "" }
	}

	var found string
	doc.Find("audio").EachWithBreak(func(_ int, audio *goquery.Selection) bool {
		if src, ok := audio.Attr("src"); ok && accept(src) {
			found = src
			return false
		}

		audio.Find("source[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if src := s.AttrOr("src", ""); accept(src) {
				found = src
				return false
			}
			return true
		})

		return found == ""
	})

	return found
}

// FirstLink returns the href of the first element matched by selector that satisfies accept.
func FirstLink(doc *goquery.Selection, selector string, accept func(href string, s *goquery.Selection) bool) string {
	var found string
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return true
		}
		if accept == nil || accept(href, s) {
			found = href
			return false
		}
		return true
	})
	return found
}

// WithExt returns an accept function matching the given extensions.
func WithExt(exts ...string) func(string) bool {
	return func(s string) bool {
		return s != "" && HasExt(s, exts...)
	}
}

// LinkWithExt adapts WithExt to FirstLink.
func LinkWithExt(exts ...string) func(string, *goquery.Selection) bool {
	accept := WithExt(exts...)
	return func(href string, _ *goquery.Selection) bool {
		return accept(href)
	}
}

// FirstMatch returns the first match of the patterns, tried in order, that keep accepts.
// A pattern with a capture group yields the group, otherwise the whole match.
func FirstMatch(body string, keep func(string) bool, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			candidate := m[0]
			if len(m) > 1 {
				candidate = m[1]
			}
			if keep == nil || keep(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// Scripts concatenates the text of every <script> element.
func Scripts(doc *goquery.Selection) string {
	var b strings.Builder
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
		b.WriteByte('\n')
	})
	return b.String()
}

// Heading returns the first non-empty heading text found in s, among the given levels.
func Heading(s *goquery.Selection, selector string) string {
	var title string
	s.Find(selector).EachWithBreak(func(_ int, h *goquery.Selection) bool {
		title = Clean(h.Text())
		return title == ""
	})
	return title
}

var spaces = regexp.MustCompile(`\s+`)

// Clean collapses whitespace and trims.
func Clean(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// Limit truncates items to at most n. A non-positive n keeps everything.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}

// UniqueBy drops later items whose key was already seen.
func UniqueBy[T any](items []T, key func(T) string) []T {
	return lo.UniqBy(items, key)
}
