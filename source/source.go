// Package source defines episode descriptors and the contract every program scraper fulfils.
package source

import (
	"context"
	"errors"
)

// PlaceholderURL is not a network address. Downloading it synthesizes a
// short silent MP3 instead, for programs whose real audio could not be found.
const PlaceholderURL = "generate_local_audio"

// ErrNoAudio is returned by AudioURL when no strategy produced an audio URL.
var ErrNoAudio = errors.New("no audio url found")

// Source lists a program's latest episodes and resolves their audio.
type Source interface {
	// Name is the program display name.
	Name() string

	// URL is the listing URL the source was created for.
	URL() string

	// Episodes returns the most recent episodes, newest first.
	Episodes(ctx context.Context) ([]*Episode, error)

	// AudioURL resolves the direct audio URL of an episode that only has a listen page.
	AudioURL(ctx context.Context, episode *Episode) (string, error)
}
