package cambios

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/radiodl-cli/radiodl/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCambios(t *testing.T) {
	Convey("Given Cambios Profundos", t, func() {
		ctx := context.Background()
		media := ""
		live := map[string]bool{}

		mux := http.NewServeMux()
		mux.HandleFunc("/wp-json/wp/v2/media", func(w http.ResponseWriter, r *http.Request) {
			if media == "" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(media))
		})
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				if !live[r.URL.Path] {
					http.NotFound(w, r)
				}
				return
			}
			_, _ = w.Write([]byte(`<p>Sin audio hoy</p>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		src := New(server.URL+"/", "").(*Source)
		src.Now = func() time.Time { return time.Date(2025, 11, 20, 7, 0, 0, 0, time.Local) }

		Convey("The first audio item of the media API wins", func() {
			media = `[{"mime_type":"image/png","source_url":"x.png"},
				{"mime_type":"audio/mpeg","source_url":"https://cdn.example/dev.mp3","title":{"rendered":"Devocional: Fe"}}]`

			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Title, ShouldEqual, "Devocional: Fe")
			So(episodes[0].AudioURL, ShouldEqual, "https://cdn.example/dev.mp3")
		})

		Convey("Upload folders of the past week are probed", func() {
			live["/wp-content/uploads/2025/11/cambios-2025-11-18.mp3"] = true

			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes[0].Title, ShouldEqual, "Devocional del día 2025-11-18")
			So(episodes[0].AudioURL, ShouldEqual, server.URL+"/wp-content/uploads/2025/11/cambios-2025-11-18.mp3")
		})

		Convey("Nothing published yields a simulated episode", func() {
			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Simulated, ShouldBeTrue)
			So(episodes[0].IsPlaceholder(), ShouldBeTrue)

			Convey("which resolves to the placeholder", func() {
				audio, err := src.AudioURL(ctx, episodes[0])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, source.PlaceholderURL)
			})

			Convey("unless a well-known file answers", func() {
				live["/wp-content/uploads/audio/devocional.mp3"] = true

				audio, err := src.AudioURL(ctx, episodes[0])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, server.URL+"/wp-content/uploads/audio/devocional.mp3")
			})
		})
	})
}
