package source

import (
	"strings"
	"time"
)

// Episode is one candidate audio item of a program.
type Episode struct {
	Title string `json:"title"`
	// Program is the display name of the owning program.
	Program string `json:"program"`

	// AudioURL is the direct media URL when known.
	AudioURL string `json:"audio_url,omitempty"`
	// ListenURL is the page the audio URL has to be resolved from.
	ListenURL string `json:"listen_url,omitempty"`
	// OriginalURL is the program listing URL this episode came from.
	OriginalURL string `json:"original_url,omitempty"`

	Duration  time.Duration `json:"duration,omitempty"`
	Published *time.Time    `json:"published,omitempty"`

	// LargeFile asks the downloader for a longer timeout and a bigger buffer.
	LargeFile bool `json:"large_file,omitempty"`
	// Simulated episodes were made up when every real strategy failed.
	Simulated bool `json:"simulated,omitempty"`
}

func (e *Episode) String() string {
	return e.Title
}

// Resolved reports whether the episode already carries a direct audio URL.
func (e *Episode) Resolved() bool {
	return strings.TrimSpace(e.AudioURL) != ""
}

// IsPlaceholder reports whether downloading the episode synthesizes silence.
func (e *Episode) IsPlaceholder() bool {
	return e.AudioURL == PlaceholderURL
}
