package downloader

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/radiodl-cli/radiodl/key"
	"github.com/spf13/viper"
)

var videoHost = regexp.MustCompile(`(?i)^https?://(www\.|m\.|music\.)?(youtube\.com|youtu\.be)/`)

// IsVideo reports whether url belongs to a video host handled by the extractor.
func IsVideo(url string) bool {
	return videoHost.MatchString(url)
}

// Extractor saves the audio track of a video page.
type Extractor interface {
	// Extract writes the audio to target, which ends in .mp3.
	Extract(ctx context.Context, url, target string) error
	// Command is the equivalent shell command, printed for manual recovery.
	Command(url, target string) string
}

// YTDLP runs the yt-dlp executable.
type YTDLP struct {
	Path string
	Run  func(ctx context.Context, name string, args ...string) error
}

func NewYTDLP() *YTDLP {
	path := viper.GetString(key.DownloaderYtdlpPath)
	if path == "" {
		path = "yt-dlp"
	}
	return &YTDLP{Path: path, Run: run}
}

func run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}

func (y *YTDLP) args(url, target string) []string {
	return []string{
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"--no-playlist",
		"-o", strings.TrimSuffix(target, ".mp3") + ".%(ext)s",
		url,
	}
}

func (y *YTDLP) Extract(ctx context.Context, url, target string) error {
	return y.Run(ctx, y.Path, y.args(url, target)...)
}

func (y *YTDLP) Command(url, target string) string {
	quoted := make([]string, 0, 7)
	for _, arg := range append([]string{y.Path}, y.args(url, target)...) {
		if strings.ContainsAny(arg, " %()'\"") {
			arg = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		quoted = append(quoted, arg)
	}
	return strings.Join(quoted, " ")
}
