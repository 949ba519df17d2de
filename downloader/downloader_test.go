package downloader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/network"
	"github.com/radiodl-cli/radiodl/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type stubExtractor struct {
	url, target string
	err         error
}

func (s *stubExtractor) Extract(_ context.Context, url, target string) error {
	s.url, s.target = url, target
	if s.err != nil {
		return s.err
	}
	return filesystem.API().WriteFile(target, []byte("audio"), 0o644)
}

func (s *stubExtractor) Command(url, target string) string {
	return "yt-dlp " + url
}

func newTestDownloader(sleeps *[]time.Duration) *Downloader {
	return &Downloader{
		Session: network.NewSession(0),
		Policy: Policy{
			Attempts: 3,
			Delay:    5 * time.Second,
			Sleep: func(_ context.Context, d time.Duration) error {
				*sleeps = append(*sleeps, d)
				return nil
			},
		},
		Extractor:    &stubExtractor{},
		Timeout:      5 * time.Second,
		LargeTimeout: 10 * time.Second,
	}
}

func TestDownload(t *testing.T) {
	Convey("Given a downloader", t, func() {
		filesystem.SetMemMapFs()

		var (
			sleeps   []time.Duration
			requests atomic.Int32
			ctx      = context.Background()
			d        = newTestDownloader(&sleeps)
			target   = Target("/descargas", "Gracia a Vosotros", "Episodio 1: Fe")
		)

		So(target, ShouldEqual, "/descargas/Gracia_a_Vosotros/Episodio_1_Fe.mp3")

		Convey("A URL answering 404 three times creates no file", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				http.NotFound(w, r)
			}))
			defer server.Close()

			result := d.Download(ctx, server.URL+"/a.mp3", "Gracia a Vosotros", "Episodio 1: Fe", "/descargas")

			So(result.Kind, ShouldEqual, Failed)
			So(result.OK(), ShouldBeFalse)
			So(requests.Load(), ShouldEqual, int32(3))
			So(sleeps, ShouldBeEmpty)

			var status *network.StatusError
			So(errors.As(result.Err, &status), ShouldBeTrue)
			So(status.Code, ShouldEqual, http.StatusNotFound)

			exists, _ := filesystem.API().Exists(target)
			So(exists, ShouldBeFalse)
		})

		Convey("A network failure followed by success saves the full content", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if requests.Add(1) == 1 {
					conn, _, err := w.(http.Hijacker).Hijack()
					if err == nil {
						_ = conn.Close()
					}
					return
				}
				_, _ = w.Write([]byte("ID3 contenido del episodio"))
			}))
			defer server.Close()

			result := d.Download(ctx, server.URL+"/a.mp3", "Gracia a Vosotros", "Episodio 1: Fe", "/descargas")

			So(result.Kind, ShouldEqual, Downloaded)
			So(result.Path, ShouldEqual, target)
			So(result.Size, ShouldEqual, int64(len("ID3 contenido del episodio")))
			So(sleeps, ShouldResemble, []time.Duration{5 * time.Second})

			data, err := filesystem.API().ReadFile(target)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "ID3 contenido del episodio")
		})

		Convey("An existing target makes no requests", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
			}))
			defer server.Close()

			So(filesystem.API().MkdirAll("/descargas/Gracia_a_Vosotros", 0o755), ShouldBeNil)
			So(filesystem.API().WriteFile(target, []byte("old"), 0o644), ShouldBeNil)

			result := d.Download(ctx, server.URL+"/a.mp3", "Gracia a Vosotros", "Episodio 1: Fe", "/descargas")

			So(result.Kind, ShouldEqual, Skipped)
			So(requests.Load(), ShouldEqual, int32(0))
		})

		Convey("The placeholder sentinel synthesizes silence", func() {
			result := d.Download(ctx, source.PlaceholderURL, "Cambios Profundos", "Devocional", "/descargas")

			So(result.Kind, ShouldEqual, Placeholder)
			So(result.Size, ShouldEqual, int64(38*417))

			data, err := filesystem.API().ReadFile(result.Path)
			So(err, ShouldBeNil)
			So(data[:4], ShouldResemble, []byte{0xFF, 0xFB, 0x90, 0x00})
			So(data[417:421], ShouldResemble, []byte{0xFF, 0xFB, 0x90, 0x00})
		})

		Convey("Video URLs are delegated to the extractor", func() {
			extractor := d.Extractor.(*stubExtractor)
			url := "https://www.youtube.com/watch?v=abc123"

			result := d.Download(ctx, url, "Carlos Ruiz", "Devocional", "/descargas")

			So(result.Kind, ShouldEqual, Delegated)
			So(extractor.url, ShouldEqual, url)
			So(extractor.target, ShouldEqual, "/descargas/Carlos_Ruiz/Devocional.mp3")

			Convey("and a failing extractor leaves a manual command", func() {
				extractor.err = errors.New("boom")
				result := d.Download(ctx, url, "Carlos Ruiz", "Otro", "/descargas")

				So(result.Kind, ShouldEqual, Failed)
				So(result.Hint, ShouldEqual, "yt-dlp "+url)
			})
		})
	})
}

func TestIsLarge(t *testing.T) {
	Convey("Large files are recognised by flag, host or program", t, func() {
		d := &Downloader{
			LargeHosts:    []string{"podbean.com", "simplecastaudio.com"},
			LargePrograms: []string{"Sabiduría"},
		}

		So(d.IsLarge("https://example.com/a.mp3", "Otro", true), ShouldBeTrue)
		So(d.IsLarge("https://mcdn.podbean.com/mf/web/a.mp3", "Otro", false), ShouldBeTrue)
		So(d.IsLarge("https://cdn.simplecastaudio.com/a.mp3", "Otro", false), ShouldBeTrue)
		So(d.IsLarge("https://example.com/a.mp3", "Sabiduría Internacional", false), ShouldBeTrue)
		So(d.IsLarge("https://example.com/a.mp3", "Gracia a Vosotros", false), ShouldBeFalse)
	})
}

func TestVideoAndCommand(t *testing.T) {
	Convey("Video hosts", t, func() {
		So(IsVideo("https://youtu.be/abc"), ShouldBeTrue)
		So(IsVideo("https://m.youtube.com/watch?v=abc"), ShouldBeTrue)
		So(IsVideo("https://music.youtube.com/watch?v=abc"), ShouldBeTrue)
		So(IsVideo("https://example.com/youtube.com/a.mp3"), ShouldBeFalse)
	})

	Convey("yt-dlp is asked for mp3 next to the target", t, func() {
		var got []string
		y := &YTDLP{Path: "yt-dlp", Run: func(_ context.Context, name string, args ...string) error {
			got = append([]string{name}, args...)
			return nil
		}}

		So(y.Extract(context.Background(), "https://youtu.be/abc", "/d/p/t.mp3"), ShouldBeNil)
		So(got, ShouldContain, "-x")
		So(got, ShouldContain, "/d/p/t.%(ext)s")
		So(got[len(got)-1], ShouldEqual, "https://youtu.be/abc")
		So(strings.HasPrefix(y.Command("https://youtu.be/abc", "/d/p/t.mp3"), "yt-dlp -x"), ShouldBeTrue)
	})
}

func TestPolicy(t *testing.T) {
	Convey("A cancelled context stops the retries", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0

		err := Policy{Attempts: 3, Sleep: sleep}.run(ctx, func(int) error {
			calls++
			cancel()
			return &attemptError{err: errors.New("down"), delay: true}
		})

		So(calls, ShouldEqual, 1)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}

func TestSilence(t *testing.T) {
	Convey("Silence is a run of silent frames distinct from the Placeholder kind", t, func() {
		data := Silence()
		So(len(data), ShouldEqual, 38*417)
		So(data[37*417:37*417+4], ShouldResemble, []byte{0xFF, 0xFB, 0x90, 0x00})
		So(Placeholder.String(), ShouldNotBeEmpty)
	})
}
