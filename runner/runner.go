// Package runner downloads the latest episodes of every enabled program.
// Programs run one after another; a failing program or episode is reported and skipped.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/downloader"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/provider"
	"github.com/radiodl-cli/radiodl/prune"
	"github.com/radiodl-cli/radiodl/scrape"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/samber/lo"
)

// Downloader saves one resolved episode. *downloader.Downloader satisfies it.
type Downloader interface {
	DownloadEpisode(ctx context.Context, ep *source.Episode, audioURL, baseDir string) downloader.Result
}

// Factory builds the scraper for a program URL.
type Factory func(url, program string) (source.Source, error)

// Recorder is told about every file that now exists on disk.
type Recorder func(ep *source.Episode, audioURL string, result downloader.Result) error

type Runner struct {
	Manager    *programs.Manager
	Directory  string
	Factory    Factory
	Downloader Downloader
	Pruner     prune.Pruner
	Record     Recorder

	// Cleanup prunes each program folder after its downloads.
	Cleanup bool
	// Only restricts the run to these program names.
	Only []string
	// FallbackURLs run when no program is enabled.
	FallbackURLs []string

	Out io.Writer
}

// Summary counts what a run did.
type Summary struct {
	Programs   int
	Downloaded int
	Skipped    int
	Failed     int
	Pruned     int
	Bytes      int64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s, %d downloaded (%s), %d skipped, %d failed, %d pruned",
		util.Quantify(s.Programs, "program", "programs"),
		s.Downloaded,
		humanize.IBytes(uint64(s.Bytes)),
		s.Skipped,
		s.Failed,
		s.Pruned,
	)
}

// New wires a runner to the real factory and downloader.
func New(manager *programs.Manager, directory string) *Runner {
	return &Runner{
		Manager:    manager,
		Directory:  directory,
		Factory:    provider.CreateNamed,
		Downloader: downloader.New(),
		Pruner:     prune.Pruner{},
		Cleanup:    manager.Settings().CleanupOldFiles,
		Out:        os.Stdout,
	}
}

// Targets returns the programs this run will process.
func (r *Runner) Targets() []*programs.Program {
	targets := r.Manager.Enabled()

	if len(r.Only) > 0 {
		targets = lo.Filter(r.Manager.All(), func(p *programs.Program, _ int) bool {
			return lo.Contains(r.Only, p.Name)
		})
	}

	if len(targets) == 0 && len(r.Only) == 0 {
		for _, u := range r.FallbackURLs {
			if u = strings.TrimSpace(u); u != "" {
				targets = append(targets, &programs.Program{URL: u})
			}
		}
	}

	return targets
}

// Run processes every target and returns the totals.
func (r *Runner) Run(ctx context.Context) Summary {
	var summary Summary

	targets := r.Targets()
	if len(targets) == 0 {
		r.printf(icon.Warn, "no enabled programs in %s", r.Manager.Path())
		return summary
	}

	for _, p := range targets {
		if ctx.Err() != nil {
			break
		}

		summary.Programs++
		r.program(ctx, p, &summary)
	}

	if r.Cleanup {
		prune.Empty(r.Directory)
	}

	return summary
}

func (r *Runner) program(ctx context.Context, p *programs.Program, summary *Summary) {
	src, err := r.Factory(p.URL, p.Name)
	if err != nil {
		if errors.Is(err, provider.ErrUnsupported) {
			r.printf(icon.Warn, "%s: %v", p.URL, err)
		} else {
			r.printf(icon.Fail, "%s: %v", p.URL, err)
		}
		log.Errorf("program %q: %v", p.Name, err)
		return
	}

	if c, ok := src.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.Warnf("program %q: close: %v", p.Name, err)
			}
		}()
	}

	name := src.Name()
	fmt.Fprintf(r.out(), "\n%s %s %s\n", icon.Get(icon.Info), style.Bold(name), style.Faint(p.URL))

	episodes, err := src.Episodes(ctx)
	if err != nil {
		r.printf(icon.Fail, "listing failed: %v", err)
		log.Errorf("program %q: episodes: %v", name, err)
		return
	}

	episodes = scrape.Limit(episodes, r.Manager.EffectiveMaxEpisodes(p))
	if len(episodes) == 0 {
		r.printf(icon.Warn, "no episodes found")
	}

	for _, ep := range episodes {
		if ctx.Err() != nil {
			return
		}
		r.episode(ctx, src, ep, summary)
	}

	if r.Cleanup {
		days := r.Manager.EffectiveCleanupDays(p)
		removed := r.Pruner.Prune(filepath.Join(r.Directory, util.SanitizeFilename(name)), days)
		if removed > 0 {
			r.printf(icon.Skip, "pruned %s older than %d days", util.Quantify(removed, "file", "files"), days)
		}
		summary.Pruned += removed
	}
}

func (r *Runner) episode(ctx context.Context, src source.Source, ep *source.Episode, summary *Summary) {
	audioURL := ep.AudioURL
	if !ep.Resolved() {
		var err error
		if audioURL, err = src.AudioURL(ctx, ep); err != nil || audioURL == "" {
			summary.Failed++
			r.printf(icon.Fail, "%s: no audio found", ep.Title)
			log.Warnf("episode %q: %v", ep.Title, err)
			return
		}
	}

	result := r.Downloader.DownloadEpisode(ctx, ep, audioURL, r.Directory)

	switch result.Kind {
	case downloader.Skipped:
		summary.Skipped++
		r.printf(icon.Skip, "%s %s", ep.Title, style.Faint("already downloaded"))
		return
	case downloader.Failed:
		summary.Failed++
		r.printf(icon.Fail, "%s: %v", ep.Title, result.Err)
		if result.Hint != "" {
			fmt.Fprintf(r.out(), "  %s %s\n", style.Faint("try:"), result.Hint)
		}
		return
	}

	summary.Downloaded++
	summary.Bytes += result.Size

	detail := humanize.IBytes(uint64(result.Size))
	if result.Kind != downloader.Downloaded {
		detail = result.Kind.String()
	}
	r.printf(icon.Success, "%s %s", ep.Title, style.Fg(color.Green)(detail))

	if r.Record != nil {
		if err := r.Record(ep, audioURL, result); err != nil {
			log.Warnf("history: %v", err)
		}
	}
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

func (r *Runner) printf(i icon.Icon, format string, args ...any) {
	fmt.Fprintf(r.out(), "%s %s\n", icon.Get(i), fmt.Sprintf(format, args...))
}
