package scrape

import (
	"context"
	"regexp"

	"github.com/radiodl-cli/radiodl/log"
)

var anyMP3 = regexp.MustCompile(`https?://[^\s"'<>]+\.mp3[^\s"'<>]*`)

// AudioFromPage is the generic listen-page resolver: an <audio> source,
// then a link to an audio file, then any absolute mp3 URL in the markup.
func (b *Base) AudioFromPage(ctx context.Context, url string, exts ...string) string {
	if len(exts) == 0 {
		exts = AudioTypes
	}

	doc, body, err := b.Document(ctx, url)
	if err != nil {
		log.Warnf("%s: listen page %s: %v", b.Program, url, err)
		return ""
	}

	if src := FirstAudio(doc.Selection, WithExt(exts...)); src != "" {
		return NormalizeURL(url, src)
	}

	if href := FirstLink(doc.Selection, "a[href]", LinkWithExt(exts...)); href != "" {
		return NormalizeURL(url, href)
	}

	return FirstMatch(string(body), nil, anyMP3)
}
