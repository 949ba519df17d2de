package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDirectory(t *testing.T) {
	Convey("Given the podcast directory", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		ctx := context.Background()
		lookups := 0
		var id string

		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/lookup", func(w http.ResponseWriter, r *http.Request) {
			lookups++
			id = r.URL.Query().Get("id")
			_, _ = fmt.Fprintf(w, `{"resultCount":1,"results":[{"feedUrl":"%s/feed"}]}`, server.URL)
		})
		mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"resultCount":0,"results":[]}`))
		})
		mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<rss><channel>
				<item><title>Romanos 8</title><enclosure url="https://cdn.example/r8.mp3" type="audio/mpeg"/><duration>25:30</duration></item>
				<item><title>Sin enclosure</title><link>https://example.org/x</link></item>
			</channel></rss>`))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		Convey("An Apple Podcasts URL is looked up by id", func() {
			src := New("https://podcasts.apple.com/es/podcast/temas-biblicos/id1526364180", "Temas Bíblicos").(*Source)
			src.Directory.API = server.URL

			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Title, ShouldEqual, "Romanos 8")
			So(episodes[0].Duration.Minutes(), ShouldEqual, 25.5)
			So(id, ShouldEqual, "1526364180")

			Convey("and the lookup is cached", func() {
				_, err := src.Episodes(ctx)
				So(err, ShouldBeNil)
				So(lookups, ShouldEqual, 1)
			})
		})

		Convey("An empty search is an error", func() {
			src := New("https://podcasts.apple.com/es/podcast/nada", "Nada").(*Source)
			src.Directory.API = server.URL

			_, err := src.Episodes(ctx)
			So(errors.Is(err, ErrNoFeed), ShouldBeTrue)
		})
	})
}
