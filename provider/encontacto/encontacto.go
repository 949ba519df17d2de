// Package encontacto finds the latest En Contacto program.
// File names carry a hexadecimal counter that grows by one per day, so it is estimated and probed.
package encontacto

import (
	"context"
	"fmt"
	"time"

	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
)

const (
	Program = "En Contacto"
	cdn     = "https://intouch.azureedge.net/spanish/pgm"
	days    = 10
	spread  = 5
)

// The counter published on the reference day.
var (
	referenceDay  = time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)
	referenceCode = 0x8E10E
)

// EstimateCode returns the expected counter for day.
func EstimateCode(day time.Time) int {
	y, m, d := day.Date()
	elapsed := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Sub(referenceDay)
	return referenceCode + int(elapsed.Hours()/24)
}

// Candidates lists the URLs to try for day, from estimate-spread up to estimate+spread.
func Candidates(base string, day time.Time) []string {
	estimate := EstimateCode(day)
	date := day.Format("2006_01_02")

	urls := make([]string, 0, 2*spread+1)
	for offset := -spread; offset <= spread; offset++ {
		urls = append(urls, fmt.Sprintf("%s/ec_pgm_%s_%X.mp3", base, date, estimate+offset))
	}
	return urls
}

type Source struct {
	scrape.Base
	cdn string
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, Program), cdn: cdn}
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	for _, day := range scrape.DaysBack(s.Today(), days) {
		for _, audio := range Candidates(s.cdn, day) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if s.Probe(ctx, audio, scrape.ProbeShort) {
				return []*source.Episode{s.Episode(Program+" - "+scrape.DMY(day), audio, "")}, nil
			}
		}
	}

	return nil, nil
}

func (s *Source) AudioURL(ctx context.Context, ep *source.Episode) (string, error) {
	return s.Resolve(ctx, ep, func(context.Context, string) string { return "" })
}
