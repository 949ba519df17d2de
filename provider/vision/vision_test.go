package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const feed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>VPV</title>
<item><title>La gracia que sostiene</title><link>https://example.org/ep/1</link>
<enclosure url="https://insightforliving.swncdn.com/International/VPV/NA/Media/MP3/VPV2025-11-14-Podcast.mp3" type="audio/mpeg" length="1"/></item>
<item><title>Segundo</title><link>https://example.org/ep/2</link></item>
</channel></rss>`

func TestVision(t *testing.T) {
	Convey("Given Visión para Vivir", t, func() {
		ctx := context.Background()
		withFeed := true
		published := map[string]bool{}

		mux := http.NewServeMux()
		mux.HandleFunc("/feed/", func(w http.ResponseWriter, r *http.Request) {
			if !withFeed {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(feed))
		})
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`
				<div id="ember12" class="app-link-to ember-view"><a id="ember13" class="ember-view" href="/programa/firmes">Firmes en la fe</a></div>
				<div id="ember14" class="app-link-to ember-view"><a id="ember15" class="ember-view" href="/programa/otro">Otro</a></div>`))
		})
		mux.HandleFunc("/programa/firmes", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<p>Publicado 2025-11-12, revisado 2025-11-13</p>`))
		})
		mux.HandleFunc("/cdn/", func(w http.ResponseWriter, r *http.Request) {
			if published[r.URL.Path] {
				w.WriteHeader(http.StatusOK)
				return
			}
			http.NotFound(w, r)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		src := New(server.URL+"/", "").(*Source)
		src.cdn = server.URL + "/cdn"
		src.Now = func() time.Time { return time.Date(2025, 11, 14, 8, 0, 0, 0, time.Local) }

		Convey("The feed wins and only one episode is kept", func() {
			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Title, ShouldEqual, "La gracia que sostiene")
			So(episodes[0].Resolved(), ShouldBeTrue)
		})

		Convey("Without a feed the ember links are listed", func() {
			withFeed = false

			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Title, ShouldEqual, "Firmes en la fe")
			So(episodes[0].ListenURL, ShouldEqual, server.URL+"/programa/firmes")

			Convey("Dates on the page are probed newest first", func() {
				published["/cdn/VPV2025-11-12-Podcast.mp3"] = true

				audio, err := src.AudioURL(ctx, episodes[0])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, server.URL+"/cdn/VPV2025-11-12-Podcast.mp3")
			})

			Convey("Nothing published means no audio", func() {
				_, err := src.AudioURL(ctx, episodes[0])
				So(err, ShouldNotBeNil)
			})
		})
	})
}
