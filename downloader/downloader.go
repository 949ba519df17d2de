// Package downloader saves episode audio to <dir>/<program>/<title>.mp3.
// Every failure ends as a Failed result; nothing is returned as an error.
package downloader

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/network"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/spf13/viper"
)

const (
	smallBuffer = 32 << 10
	largeBuffer = 1 << 20
)

type Kind int

const (
	Failed Kind = iota
	Downloaded
	Skipped
	Delegated
	Placeholder
)

func (k Kind) String() string {
	switch k {
	case Downloaded:
		return "downloaded"
	case Skipped:
		return "skipped"
	case Delegated:
		return "delegated"
	case Placeholder:
		return "placeholder"
	default:
		return "failed"
	}
}

// Result describes what happened to one episode.
type Result struct {
	Kind Kind
	Path string
	Size int64
	Err  error
	// Hint is a command the user can run to retry by hand.
	Hint string
}

// OK reports whether the target file exists afterwards.
func (r Result) OK() bool {
	return r.Kind != Failed
}

type Downloader struct {
	Session   *network.Session
	Policy    Policy
	Extractor Extractor

	Timeout      time.Duration
	LargeTimeout time.Duration

	// LargeHosts and LargePrograms are substrings of the audio host and program name.
	LargeHosts    []string
	LargePrograms []string

	// Progress is where the progress bar is drawn. Nil disables it.
	Progress io.Writer
}

// New configures a downloader from the config.
func New() *Downloader {
	d := &Downloader{
		Session:       network.NewSession(0),
		Policy:        DefaultPolicy(),
		Extractor:     NewYTDLP(),
		Timeout:       time.Duration(viper.GetInt(key.DownloaderTimeout)) * time.Second,
		LargeTimeout:  time.Duration(viper.GetInt(key.DownloaderLargeTimeout)) * time.Second,
		LargeHosts:    viper.GetStringSlice(key.DownloaderLargeHosts),
		LargePrograms: viper.GetStringSlice(key.DownloaderLargePrograms),
	}

	if viper.GetBool(key.DownloaderProgress) && util.IsTerminal() {
		d.Progress = os.Stderr
	}

	return d
}

// Target is the file an episode is saved to.
func Target(baseDir, program, title string) string {
	return filepath.Join(baseDir, util.SanitizeFilename(program), util.SanitizeFilename(title)+".mp3")
}

// IsLarge reports whether the episode should get the wide timeout and buffer.
func (d *Downloader) IsLarge(audioURL, program string, flagged bool) bool {
	if flagged {
		return true
	}

	host := scrape.Host(audioURL)
	for _, h := range d.LargeHosts {
		if h != "" && strings.Contains(host, strings.ToLower(h)) {
			return true
		}
	}

	for _, p := range d.LargePrograms {
		if p != "" && strings.Contains(program, p) {
			return true
		}
	}

	return false
}

// Download saves audioURL as the episode title of program under baseDir.
func (d *Downloader) Download(ctx context.Context, audioURL, program, title, baseDir string) Result {
	return d.download(ctx, audioURL, program, title, baseDir, false)
}

// DownloadEpisode is Download with the episode's own large-file flag.
func (d *Downloader) DownloadEpisode(ctx context.Context, ep *source.Episode, audioURL, baseDir string) Result {
	return d.download(ctx, audioURL, ep.Program, ep.Title, baseDir, ep.LargeFile)
}

func (d *Downloader) download(ctx context.Context, audioURL, program, title, baseDir string, large bool) Result {
	target := Target(baseDir, program, title)
	logger := log.With(log.Fields{"program": program, "path": target})

	if exists, _ := filesystem.API().Exists(target); exists {
		logger.Infof("already downloaded")
		return Result{Kind: Skipped, Path: target}
	}

	if err := filesystem.API().MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		logger.Errorf("create directory: %v", err)
		return Result{Kind: Failed, Path: target, Err: err}
	}

	switch {
	case audioURL == source.PlaceholderURL:
		return d.placeholder(target)
	case IsVideo(audioURL):
		return d.extract(ctx, audioURL, target)
	default:
		return d.fetch(ctx, audioURL, program, title, target, d.IsLarge(audioURL, program, large))
	}
}

func (d *Downloader) placeholder(target string) Result {
	n, err := filesystem.WriteAtomic(target, bytes.NewReader(Silence()), 0o644)
	if err != nil {
		log.Errorf("placeholder %s: %v", target, err)
		return Result{Kind: Failed, Path: target, Err: err}
	}

	log.Infof("placeholder written to %s", target)
	return Result{Kind: Placeholder, Path: target, Size: n}
}

func (d *Downloader) extract(ctx context.Context, url, target string) Result {
	if d.Extractor == nil {
		return Result{Kind: Failed, Path: target, Err: errors.New("no extractor for video urls")}
	}

	hint := d.Extractor.Command(url, target)

	if err := d.Extractor.Extract(ctx, url, target); err != nil {
		log.Errorf("extract %s: %v", url, err)
		return Result{Kind: Failed, Path: target, Err: err, Hint: hint}
	}

	var size int64
	if info, err := filesystem.API().Stat(target); err == nil {
		size = info.Size()
	}

	log.Infof("extracted %s into %s", url, target)
	return Result{Kind: Delegated, Path: target, Size: size}
}

func (d *Downloader) fetch(ctx context.Context, url, program, title, target string, large bool) Result {
	timeout, buffer := d.Timeout, smallBuffer
	if large {
		timeout, buffer = d.LargeTimeout, largeBuffer
	}

	logger := log.With(log.Fields{"program": program, "url": url, "large": large})

	var written int64
	err := d.Policy.run(ctx, func(n int) error {
		logger.Infof("attempt %d/%d", n, d.Policy.Attempts)

		var err error
		written, err = d.attempt(ctx, url, title, target, timeout, buffer)
		if err != nil {
			logger.Warnf("attempt %d: %v", n, err)
		}
		return err
	})

	if err != nil {
		logger.Errorf("giving up after %d attempts: %v", d.Policy.Attempts, err)
		return Result{Kind: Failed, Path: target, Err: err}
	}

	logger.Infof("saved %s (%s)", target, humanize.IBytes(uint64(written)))
	return Result{Kind: Downloaded, Path: target, Size: written}
}

func (d *Downloader) attempt(ctx context.Context, url, title, target string, timeout time.Duration, buffer int) (int64, error) {
	resp, cancel, err := d.Session.Do(ctx, http.MethodGet, url, timeout)
	if err != nil {
		return 0, &attemptError{err: err, delay: true}
	}
	defer cancel()
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return 0, &attemptError{err: &network.StatusError{URL: url, Code: resp.StatusCode}}
	}

	var body io.Reader = bufio.NewReaderSize(resp.Body, buffer)

	var bar *progress
	if d.Progress != nil && resp.ContentLength > 0 {
		bar = newProgress(d.Progress, title, resp.ContentLength)
		proxy := bar.reader(body)
		defer util.Ignore(proxy.Close)
		body = proxy
	}

	n, err := filesystem.WriteAtomic(target, body, 0o644)
	if bar != nil {
		bar.finish(err == nil)
	}

	if err != nil {
		return n, &attemptError{err: fmt.Errorf("stream: %w", err), delay: true}
	}

	return n, nil
}
