package ligonier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLigonier(t *testing.T) {
	Convey("Given the Renovando tu Mente archive", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()
		mux.HandleFunc("/rtm", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<div id="Content" role="main"><div class="column_portfolio"><ul>
				<li class="portfolio-item"><h3>La santidad de Dios</h3><a href="/rtm/santidad">ver</a></li>
				<li class="portfolio-item"><h3>Tienda</h3><a href="/tienda">ver</a></li>
				<li class="portfolio-item"><a href="/rtm/sin-titulo">ver</a></li>
			</ul></div></div>`))
		})
		mux.HandleFunc("/archivo", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<section class="episode-card"><h2>Gracia</h2><a href="/audio/gracia.mp3">mp3</a></section>`))
		})
		mux.HandleFunc("/rtm/santidad", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<script>window.__data={"audio":"//dts.podtrac.com/redirect.mp3/cdn.example/santidad.mp3"}</script>`))
		})
		mux.HandleFunc("/rtm/sin-titulo", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<audio controls><source src="/media/sin-titulo.mp3"></audio>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		Convey("Portfolio items linking to /rtm/ are episodes", func() {
			src := New(server.URL+"/rtm", "")
			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 2)
			So(episodes[0].Title, ShouldEqual, "La santidad de Dios")
			So(episodes[1].Title, ShouldEqual, Program)

			Convey("A podtrac URL in the raw page wins", func() {
				audio, err := src.AudioURL(ctx, episodes[0])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, "https://dts.podtrac.com/redirect.mp3/cdn.example/santidad.mp3")
			})

			Convey("Otherwise the audio element is used", func() {
				audio, err := src.AudioURL(ctx, episodes[1])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, server.URL+"/media/sin-titulo.mp3")
			})
		})

		Convey("Episode sections are the fallback", func() {
			episodes, err := New(server.URL+"/archivo", "").Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Title, ShouldEqual, "Gracia")
			So(episodes[0].ListenURL, ShouldEqual, server.URL+"/audio/gracia.mp3")
		})
	})
}
