package semillas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSemillas(t *testing.T) {
	pages := map[string]string{
		"/sonaar":   `<audio class="sonaar_media_element" data-audiopath="/wp-content/uploads/2025/11/programa.mp3"></audio>`,
		"/attr":     `<div data-audiopath="/cover.jpg"></div><div data-audiopath="https://cdn.example/b.mp3"></div>`,
		"/plain":    `<audio src="/x.ogg"></audio><audio src="/y.mp3"></audio>`,
		"/no-audio": `<p>Pronto</p>`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pages[r.URL.Path]))
	}))
	defer server.Close()

	ctx := context.Background()

	Convey("Semillas al Aire", t, func() {
		Convey("The Sonaar player wins", func() {
			episodes, err := New(server.URL+"/sonaar", "").Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Title, ShouldEqual, "Programa del Día")
			So(episodes[0].Program, ShouldEqual, Program)
			So(episodes[0].AudioURL, ShouldEqual, server.URL+"/wp-content/uploads/2025/11/programa.mp3")
		})

		Convey("Any data-audiopath with an mp3 is next", func() {
			episodes, _ := New(server.URL+"/attr", "").Episodes(ctx)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].AudioURL, ShouldEqual, "https://cdn.example/b.mp3")
		})

		Convey("Plain audio elements are last", func() {
			episodes, _ := New(server.URL+"/plain", "Semillas").Episodes(ctx)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].AudioURL, ShouldEqual, server.URL+"/y.mp3")
			So(episodes[0].Program, ShouldEqual, "Semillas")
		})

		Convey("No audio means no episodes", func() {
			episodes, err := New(server.URL+"/no-audio", "").Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldBeEmpty)
		})
	})
}
