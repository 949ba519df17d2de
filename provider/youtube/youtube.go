// Package youtube lists channel or playlist videos with yt-dlp.
// The videos are later downloaded as audio by the same tool.
package youtube

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/buger/jsonparser"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/spf13/viper"
)

const (
	Program           = "Carlos Ruiz Devocionales"
	DevotionalMaximum = 3 * time.Minute
	playlistEnd       = 20
	listTimeout       = 60 * time.Second
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out, nil
}

type Source struct {
	scrape.Base

	// MaxDuration drops longer videos and those of unknown length. Zero keeps everything.
	MaxDuration time.Duration
	Run         Runner
}

func New(url, program string) source.Source {
	return &Source{Base: scrape.NewBase(url, program, ""), Run: execRunner}
}

// NewDevotionals keeps only the short daily devotionals.
func NewDevotionals(url, program string) source.Source {
	return &Source{
		Base:        scrape.NewBase(url, program, Program),
		MaxDuration: DevotionalMaximum,
		Run:         execRunner,
	}
}

func binary() string {
	if path := viper.GetString(key.DownloaderYtdlpPath); path != "" {
		return path
	}
	return "yt-dlp"
}

func (s *Source) Episodes(ctx context.Context) ([]*source.Episode, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	out, err := s.Run(ctx, binary(),
		"--dump-json",
		"--flat-playlist",
		"--playlist-end", fmt.Sprint(playlistEnd),
		"--no-warnings",
		s.Listing,
	)
	if err != nil {
		return nil, err
	}

	videos := s.Parse(out)
	if s.MaxDuration <= 0 {
		return videos, nil
	}

	var short []*source.Episode
	for _, v := range videos {
		if v.Duration > 0 && v.Duration <= s.MaxDuration {
			short = append(short, v)
		}
	}

	log.Infof("youtube: %d videos, %d not longer than %s", len(videos), len(short), s.MaxDuration)
	return short, nil
}

// Parse reads the JSON lines printed by yt-dlp. Lines that are not JSON or lack an id are skipped.
func (s *Source) Parse(out []byte) []*source.Episode {
	var videos []*source.Episode

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		id, err := jsonparser.GetString(line, "id")
		if err != nil || id == "" {
			continue
		}

		title, _ := jsonparser.GetString(line, "title")
		if title == "" {
			title = "Sin título"
		}

		seconds, _ := jsonparser.GetFloat(line, "duration")

		ep := s.Episode(title, "https://www.youtube.com/watch?v="+id, "")
		ep.Duration = time.Duration(seconds) * time.Second
		videos = append(videos, ep)
	}

	return videos
}

// AudioURL returns the watch URL; the downloader hands it to yt-dlp.
func (s *Source) AudioURL(_ context.Context, ep *source.Episode) (string, error) {
	if !ep.Resolved() {
		return "", source.ErrNoAudio
	}
	return ep.AudioURL, nil
}
