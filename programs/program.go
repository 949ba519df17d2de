package programs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Program is one configured radio program.
type Program struct {
	Name        string `json:"name" jsonschema:"required,minLength=1"`
	URL         string `json:"url" jsonschema:"format=uri"`
	Enabled     *bool  `json:"enabled,omitempty" jsonschema:"default=true"`
	Description string `json:"description"`
	MaxEpisodes *int   `json:"max_episodes,omitempty" jsonschema:"minimum=0"`
	CleanupDays *int   `json:"cleanup_days,omitempty" jsonschema:"minimum=0"`
}

// IsEnabled treats a missing flag as enabled.
func (p *Program) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

func (p *Program) MaxEpisodesOverride() mo.Option[int] {
	return mo.PointerToOption(p.MaxEpisodes)
}

func (p *Program) CleanupDaysOverride() mo.Option[int] {
	return mo.PointerToOption(p.CleanupDays)
}

func (p *Program) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.URL)
}

// Settings are the defaults every program may override.
type Settings struct {
	DownloadDirectory     string `json:"download_directory" jsonschema:"default=programas"`
	MaxEpisodesPerProgram int    `json:"max_episodes_per_program" jsonschema:"default=5,minimum=0"`
	CleanupOldFiles       bool   `json:"cleanup_old_files" jsonschema:"default=true"`
	CleanupDays           int    `json:"cleanup_days" jsonschema:"default=30,minimum=0"`

	// extra keeps keys this version does not know so a save does not drop them.
	extra map[string]json.RawMessage
}

var settingsKeys = []string{
	"download_directory",
	"max_episodes_per_program",
	"cleanup_old_files",
	"cleanup_days",
}

func DefaultSettings() Settings {
	return Settings{
		DownloadDirectory:     "programas",
		MaxEpisodesPerProgram: 5,
		CleanupOldFiles:       true,
		CleanupDays:           30,
	}
}

// UnmarshalJSON fills missing keys with the defaults.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings

	decoded := plain(DefaultSettings())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range settingsKeys {
		delete(all, k)
	}

	*s = Settings(decoded)
	if len(all) > 0 {
		s.extra = all
	}
	return nil
}

// MarshalJSON writes the known keys first, then any extra keys sorted.
func (s Settings) MarshalJSON() ([]byte, error) {
	type plain Settings

	data, err := encode(plain(s))
	if err != nil || len(s.extra) == 0 {
		return data, err
	}

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])

	keys := lo.Keys(s.extra)
	sort.Strings(keys)
	for _, k := range keys {
		name, err := encode(k)
		if err != nil {
			return nil, err
		}

		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(s.extra[k])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Document is the whole programs file.
type Document struct {
	Programs []*Program `json:"radio_programs"`
	Settings Settings   `json:"settings"`
}

func DefaultDocument() *Document {
	return &Document{
		Programs: []*Program{},
		Settings: DefaultSettings(),
	}
}
