// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the prefixed environment variable bound to the field.
func (f *Field) Env() string {
	return envName(f.Key)
}

// MarshalJSON reports the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	type field struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}

	return json.Marshal(field{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
	})
}

// Type is the Go type of the default value.
func (f *Field) Type() string {
	if f.Value == nil {
		return "unknown"
	}
	return reflect.TypeOf(f.Value).String()
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DownloadDirectory, "", "Directory where episodes are stored.\nOverrides the download_directory setting of the programs file.\nAlso read from the DIRECTORIO environment variable")
	register(key.DownloaderAttempts, 3, "Number of attempts for a single HTTP download")
	register(key.DownloaderRetryDelay, 5, "Seconds to wait after a network error before the next attempt")
	register(key.DownloaderTimeout, 30, "Per-request timeout in seconds")
	register(key.DownloaderLargeTimeout, 600, "Per-request timeout in seconds for large files")
	register(key.DownloaderLargeHosts, []string{"podbean.com", "simplecastaudio.com"}, "Audio hosts that serve large files")
	register(key.DownloaderLargePrograms, []string{"Sabiduría"}, "Program name fragments whose episodes are large files")
	register(key.DownloaderYtdlpPath, "yt-dlp", "Path to the yt-dlp executable used for video hosts")
	register(key.DownloaderProgress, true, "Show a progress bar while downloading (terminal only)")
	register(key.ProgramsFile, "", "Path to the programs file.\nDefaults to radio_programs.json inside the config directory")
	register(key.ProgramsFallbackURLs, []string{}, "Program URLs to run when the programs file has no enabled entries.\nAlso read from the PROGRAMAS_URL environment variable (semicolon separated)")
	register(key.ScraperTimeout, 30, "Timeout in seconds for listing and episode pages")
	register(key.ScraperTLSFingerprint, true, "Use a browser TLS fingerprint for sites that block Go clients")
	register(key.HistorySaveOnDownload, true, "Record finished downloads in the history ledger")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"cyan":   style.Fg(color.Cyan),
	"value":  func(k string) any { return viper.Get(k) },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ .Type }}`))
