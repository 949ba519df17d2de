// Package programs reads and edits the JSON file listing the radio programs to download.
// Every change rewrites the whole file. Names are looked up first-match.
package programs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var ErrNotFound = errors.New("program not found")

// NotFoundError carries the closest existing name, if any.
type NotFoundError struct {
	Name       string
	Suggestion mo.Option[string]
}

func (e *NotFoundError) Error() string {
	if s, ok := e.Suggestion.Get(); ok {
		return fmt.Sprintf("%s: %q (did you mean %q?)", ErrNotFound, e.Name, s)
	}
	return fmt.Sprintf("%s: %q", ErrNotFound, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

type Manager struct {
	path string
	doc  *Document
}

// Defaults returns a manager holding the default document without reading path.
func Defaults(path string) *Manager {
	return &Manager{path: path, doc: DefaultDocument()}
}

// Open loads the programs file at path. A missing file gives the default document.
func Open(path string) (*Manager, error) {
	m := Defaults(path)

	data, err := filesystem.API().ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Infof("programs file %s not found, using defaults", path)
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := DefaultDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	doc.Programs = lo.Compact(doc.Programs)
	if doc.Programs == nil {
		doc.Programs = []*Program{}
	}

	m.doc = doc
	return m, nil
}

// Path is the file the manager saves to.
func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) All() []*Program {
	return m.doc.Programs
}

func (m *Manager) Enabled() []*Program {
	return lo.Filter(m.doc.Programs, func(p *Program, _ int) bool {
		return p.IsEnabled()
	})
}

func (m *Manager) Names() []string {
	return lo.Map(m.doc.Programs, func(p *Program, _ int) string {
		return p.Name
	})
}

// Find returns the first program called name.
func (m *Manager) Find(name string) mo.Option[*Program] {
	p, ok := lo.Find(m.doc.Programs, func(p *Program) bool {
		return p.Name == name
	})
	if !ok {
		return mo.None[*Program]()
	}
	return mo.Some(p)
}

func (m *Manager) Add(p Program) error {
	m.doc.Programs = append(m.doc.Programs, &p)
	return m.Save()
}

// Remove drops every program called name.
func (m *Manager) Remove(name string) error {
	before := len(m.doc.Programs)
	m.doc.Programs = lo.Reject(m.doc.Programs, func(p *Program, _ int) bool {
		return p.Name == name
	})

	if len(m.doc.Programs) == before {
		return m.notFound(name)
	}
	return m.Save()
}

func (m *Manager) Enable(name string) error {
	return m.setEnabled(name, true)
}

func (m *Manager) Disable(name string) error {
	return m.setEnabled(name, false)
}

func (m *Manager) setEnabled(name string, enabled bool) error {
	p, ok := m.Find(name).Get()
	if !ok {
		return m.notFound(name)
	}

	p.Enabled = lo.ToPtr(enabled)
	return m.Save()
}

func (m *Manager) Settings() Settings {
	return m.doc.Settings
}

func (m *Manager) SetSettings(s Settings) error {
	s.extra = m.doc.Settings.extra
	m.doc.Settings = s
	return m.Save()
}

func (m *Manager) EffectiveMaxEpisodes(p *Program) int {
	return p.MaxEpisodesOverride().OrElse(m.doc.Settings.MaxEpisodesPerProgram)
}

func (m *Manager) EffectiveCleanupDays(p *Program) int {
	return p.CleanupDaysOverride().OrElse(m.doc.Settings.CleanupDays)
}

// Save writes the document as two-space indented JSON, leaving non-ASCII text as is.
func (m *Manager) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(m.doc); err != nil {
		return err
	}

	if _, err := filesystem.WriteAtomic(m.path, &buf, 0o644); err != nil {
		return err
	}

	log.Infof("programs saved to %s", m.path)
	return nil
}

func (m *Manager) notFound(name string) error {
	return &NotFoundError{Name: name, Suggestion: m.Suggest(name)}
}

// Suggest returns the configured name closest to name.
func (m *Manager) Suggest(name string) mo.Option[string] {
	names := m.Names()
	if len(names) == 0 {
		return mo.None[string]()
	}

	if ranks := fuzzy.RankFindNormalizedFold(name, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return mo.Some(ranks[0].Target)
	}

	closest := lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	if levenshtein.Distance(name, closest) > max(len([]rune(name))/2, 3) {
		return mo.None[string]()
	}
	return mo.Some(closest)
}
