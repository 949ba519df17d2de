package twr360

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radiodl-cli/radiodl/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTWR360(t *testing.T) {
	Convey("Given a TWR360 ministry page", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/ministry", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`
				<h1><a href="/programs/view/id,101/">Paz en la tormenta</a></h1>
				<h1><a href="/about">Sobre nosotros</a></h1>
				<h1><a href="/programs/view/id,102/">Fe que vence</a></h1>`))
		})
		mux.HandleFunc("/programs/view/id,101/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<a href="/programs/view/id,101/action,audio">Escuchar</a>`))
		})
		mux.HandleFunc("/programs/view/id,101/action,audio", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<script>player.load({src: "https://cdn.twr360.org/a/101.mp3"})</script>`))
		})
		mux.HandleFunc("/programs/view/id,102/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<p>no links</p>`))
		})
		mux.HandleFunc("/programs/view/id,102/action,audio/lang,2", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<audio src="https://cdn.twr360.org/a/102.mp3"></audio>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		src := New(server.URL+"/ministry", "")
		ctx := context.Background()

		Convey("Only episode links are listed", func() {
			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 2)
			So(episodes[0].Title, ShouldEqual, "Paz en la tormenta")
			So(episodes[0].Program, ShouldEqual, Program)
			So(episodes[0].ListenURL, ShouldEqual, server.URL+"/programs/view/id,101/")

			Convey("The audio page script is read", func() {
				audio, err := src.AudioURL(ctx, episodes[0])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, "https://cdn.twr360.org/a/101.mp3")
			})

			Convey("The constructed audio page is the fallback", func() {
				audio, err := src.AudioURL(ctx, episodes[1])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, "https://cdn.twr360.org/a/102.mp3")
			})
		})

		Convey("Unresolvable episodes report ErrNoAudio", func() {
			_, err := src.AudioURL(ctx, &source.Episode{ListenURL: server.URL + "/nowhere"})
			So(err, ShouldEqual, source.ErrNoAudio)
		})
	})
}
