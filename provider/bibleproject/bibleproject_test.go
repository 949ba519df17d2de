package bibleproject

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBibleProject(t *testing.T) {
	Convey("Given the podcast index", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()
		mux.HandleFunc("/podcasts/bibleproject-espanol/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`
				<a href="/podcast/el-jardin-del-eden/">El jardín del Edén</a>
				<a href="/podcast/el-jardin-del-eden/">El jardín del Edén</a>
				<article><h3>La alianza</h3><a href="/podcast/la-alianza/"><img></a></article>
				<a href="/podcast/shalom-y-paz/"></a>
				<a href="/blog/otra-cosa/">Blog</a>`))
		})
		mux.HandleFunc("/podcast/el-jardin-del-eden/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<script>var ep = "https://afp-1.simplecastaudio.com/abc/eden.mp3?aid=rss";</script>`))
		})
		mux.HandleFunc("/podcast/la-alianza/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<a download href="https://cdn.example/alianza.mp3">Descargar</a>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		src := New(server.URL+"/podcasts/bibleproject-espanol/", "")

		Convey("Episode links are deduplicated and titled", func() {
			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 3)
			So(episodes[0].Title, ShouldEqual, "El jardín del Edén")
			So(episodes[1].Title, ShouldEqual, "La alianza")
			So(episodes[2].Title, ShouldEqual, "Shalom Y Paz")

			Convey("Simplecast audio is found in the markup", func() {
				audio, err := src.AudioURL(ctx, episodes[0])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, "https://afp-1.simplecastaudio.com/abc/eden.mp3?aid=rss")
			})

			Convey("Download links are the next choice", func() {
				audio, err := src.AudioURL(ctx, episodes[1])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, "https://cdn.example/alianza.mp3")
			})
		})

		Convey("An empty URL uses the default listing", func() {
			So(New("", "").URL(), ShouldEqual, Listing)
		})
	})
}
