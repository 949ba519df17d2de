package scrape

import (
	"net/url"
	"path"
	"strings"
)

// NormalizeURL makes href absolute against base.
// Absolute URLs are returned as is and protocol-relative ones get https.
func NormalizeURL(base, href string) string {
	href = strings.TrimSpace(href)

	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	}

	b, err := url.Parse(base)
	if err != nil || b.Host == "" {
		if strings.HasPrefix(href, "/") {
			return strings.TrimRight(base, "/") + href
		}
		return strings.TrimRight(base, "/") + "/" + href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return strings.TrimRight(base, "/") + "/" + href
	}

	return b.ResolveReference(ref).String()
}

// Host returns the lowercased hostname of raw, without port.
func Host(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// Origin returns scheme://host of raw.
func Origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Audio file extensions recognised in links.
var (
	MP3Only    = []string{".mp3"}
	AudioTypes = []string{".mp3", ".m4a", ".wav"}
)

// HasExt reports whether the path of raw (ignoring query) ends with one of exts,
// or contains it followed by a query-like suffix.
func HasExt(raw string, exts ...string) bool {
	lower := strings.ToLower(raw)
	if u, err := url.Parse(lower); err == nil {
		ext := path.Ext(u.Path)
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
	}

	for _, e := range exts {
		if strings.Contains(lower, e) {
			return true
		}
	}
	return false
}
