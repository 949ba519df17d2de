package downloader

import (
	"io"
	"os"
	"time"

	"github.com/muesli/reflow/truncate"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress wraps a response body with a byte counter bar.
type progress struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func newProgress(out io.Writer, name string, total int64) *progress {
	if out == nil {
		out = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(out),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWidth(40),
	)

	name = truncate.StringWithTail(name, 30, "…")
	bar := container.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name+" ", decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ "),
			decor.OnComplete(decor.EwmaSpeed(decor.SizeB1024(0), "% .1f", 30, decor.WCSyncSpace), ""),
		),
	)

	return &progress{container: container, bar: bar}
}

func (p *progress) reader(r io.Reader) io.ReadCloser {
	return p.bar.ProxyReader(r)
}

// finish completes or aborts the bar and waits for the final render.
func (p *progress) finish(ok bool) {
	if ok {
		p.bar.SetTotal(-1, true)
	} else {
		p.bar.Abort(false)
	}
	p.container.Wait()
}
