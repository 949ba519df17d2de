// Package provider maps program URLs to the scraper that understands them.
package provider

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/provider/acast"
	"github.com/radiodl-cli/radiodl/provider/bibleproject"
	"github.com/radiodl-cli/radiodl/provider/cambios"
	"github.com/radiodl-cli/radiodl/provider/camino"
	"github.com/radiodl-cli/radiodl/provider/coalicion"
	"github.com/radiodl-cli/radiodl/provider/crianza"
	"github.com/radiodl-cli/radiodl/provider/custom"
	"github.com/radiodl-cli/radiodl/provider/encontacto"
	"github.com/radiodl-cli/radiodl/provider/gracia"
	"github.com/radiodl-cli/radiodl/provider/itunes"
	"github.com/radiodl-cli/radiodl/provider/labibliadice"
	"github.com/radiodl-cli/radiodl/provider/ligonier"
	"github.com/radiodl-cli/radiodl/provider/rss"
	"github.com/radiodl-cli/radiodl/provider/sabiduria"
	"github.com/radiodl-cli/radiodl/provider/semillas"
	"github.com/radiodl-cli/radiodl/provider/twr360"
	"github.com/radiodl-cli/radiodl/provider/vision"
	"github.com/radiodl-cli/radiodl/provider/youtube"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
)

// ErrUnsupported is wrapped by every UnsupportedError.
var ErrUnsupported = errors.New("domain not supported")

type UnsupportedError struct {
	Domain string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupported, e.Domain)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Provider is one entry of the domain table.
type Provider struct {
	Domain  string
	Program string
	New     func(url, program string) source.Source
}

func (p *Provider) String() string {
	return p.Domain
}

var builtins = []*Provider{
	{Domain: "twr360.org", Program: twr360.Program, New: twr360.New},
	{Domain: "semillasalaire.com.ar", Program: semillas.Program, New: semillas.New},
	{Domain: "sabiduriainternacional.org", Program: sabiduria.Program, New: sabiduria.New},
	{Domain: "visionparavivir.org", Program: vision.Program, New: vision.New},
	{Domain: "es.ligonier.org", Program: ligonier.Program, New: ligonier.New},
	{Domain: "ligonier.org", Program: ligonier.Program, New: ligonier.New},
	{Domain: "elcaminodelavida.org", Program: camino.Program, New: camino.New},
	{Domain: "coalicionporelevangelio.org", Program: coalicion.Program, New: coalicion.New},
	{Domain: "crianzareverente.com", Program: crianza.Program, New: crianza.New},
	{Domain: "cambiosprofundos.com", Program: cambios.Program, New: cambios.New},
	{Domain: "shows.acast.com", Program: acast.Program, New: acast.New},
	{Domain: "feeds.acast.com", Program: acast.Program, New: acast.New},
	{Domain: "gracia.org", Program: gracia.Program, New: gracia.New},
	{Domain: "encontacto.org", Program: encontacto.Program, New: encontacto.New},
	{Domain: "youtube.com", Program: youtube.Program, New: youtube.NewDevotionals},
	{Domain: "m.youtube.com", Program: youtube.Program, New: youtube.NewDevotionals},
	{Domain: "anchor.fm", Program: rss.Program, New: rss.New},
	{Domain: "proyectobiblia.com", Program: bibleproject.Program, New: bibleproject.New},
	{Domain: "labibliadice.org", Program: labibliadice.Program, New: labibliadice.New},
	{Domain: "podcasts.apple.com", Program: "Apple Podcasts", New: itunes.New},
}

var table = lo.KeyBy(builtins, func(p *Provider) string { return p.Domain })

// feedProvider serves hosts that look like a bare feed.
var feedProvider = &Provider{Domain: "rss", Program: rss.Program, New: rss.New}

// Builtins returns the static domain table in declaration order.
func Builtins() []*Provider {
	return builtins
}

// Get returns the table entry for a bare domain.
func Get(domain string) (*Provider, bool) {
	p, ok := table[strings.ToLower(domain)]
	return p, ok
}

// Host returns the lowercased host of a program URL.
// URLs without a scheme are treated as https.
func Host(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return strings.ToLower(u.Hostname())
}

// lookup finds the table entry for host: exact, without www., then with www.
func lookup(host string) (*Provider, bool) {
	if p, ok := table[host]; ok {
		return p, true
	}

	if bare, ok := strings.CutPrefix(host, "www."); ok {
		if p, ok := table[bare]; ok {
			return p, true
		}
	} else if p, ok := table["www."+host]; ok {
		return p, true
	}

	if strings.HasPrefix(host, "feeds.") || strings.Contains(host, "rss") {
		return feedProvider, true
	}

	return nil, false
}

// script returns the custom Lua source registered for host, if any.
func script(host string) (string, bool) {
	for _, name := range []string{host, strings.TrimPrefix(host, "www.")} {
		path := filepath.Join(where.Sources(), name+".lua")
		if exists, _ := filesystem.API().Exists(path); exists {
			return path, true
		}
	}

	return "", false
}

// Create returns a scraper for rawURL named after the provider's default program.
func Create(rawURL string) (source.Source, error) {
	return CreateNamed(rawURL, "")
}

// CreateNamed returns a scraper for rawURL that labels its episodes with program.
// An empty program uses the provider's default.
func CreateNamed(rawURL, program string) (source.Source, error) {
	host := Host(rawURL)
	if host == "" {
		return nil, &UnsupportedError{Domain: rawURL}
	}

	if p, ok := lookup(host); ok {
		if program == "" {
			program = p.Program
		}
		return p.New(rawURL, program), nil
	}

	if path, ok := script(host); ok {
		return custom.LoadSource(path, rawURL, program)
	}

	return nil, &UnsupportedError{Domain: host}
}

// IsSupported reports whether Create would succeed for rawURL.
// Custom scripts are loaded and closed again.
func IsSupported(rawURL string) bool {
	host := Host(rawURL)
	if host == "" {
		return false
	}

	if _, ok := lookup(host); ok {
		return true
	}

	path, ok := script(host)
	if !ok {
		return false
	}

	src, err := custom.LoadSource(path, rawURL, "")
	if err != nil {
		log.Warnf("script %s: %s", path, err)
		return false
	}

	if c, ok := src.(io.Closer); ok {
		_ = c.Close()
	}
	return true
}

// Domains lists every table key with and without the www. prefix, sorted.
func Domains() []string {
	domains := make([]string, 0, 2*len(builtins))
	for _, p := range builtins {
		domains = append(domains, p.Domain, "www."+p.Domain)
	}

	sort.Strings(domains)
	return domains
}

// Customs lists the domains served by Lua scripts in the sources directory.
func Customs() []string {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil
	}

	var domains []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}
		domains = append(domains, strings.TrimSuffix(f.Name(), ".lua"))
	}

	return domains
}
