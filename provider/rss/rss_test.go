package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radiodl-cli/radiodl/source"
	. "github.com/smartystreets/goconvey/convey"
)

const feed = `<?xml version="1.0" encoding="ISO-8859-1"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"><channel><title>Pod</title>
<item><title>Uno</title><enclosure url="https://anchor.fm/s/1/uno.m4a" type="audio/x-m4a"/><pubDate>Fri, 14 Nov 2025 10:00:00 +0000</pubDate></item>
<item><title>Dos</title><link>https://cdn.example/dos.mp3</link></item>
<item><title>Tres</title><link>https://example.org/tres</link></item>
<item><title></title><enclosure url="https://anchor.fm/s/1/cuatro.mp3"/></item>
<item><title>Cinco</title><enclosure url="https://anchor.fm/s/1/cinco.mp3"/></item>
<item><title>Seis</title><enclosure url="https://anchor.fm/s/1/seis.mp3"/></item>
</channel></rss>`

func TestRSS(t *testing.T) {
	Convey("Given a podcast feed", t, func() {
		status := http.StatusOK
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(feed))
		}))
		defer server.Close()

		src := New(server.URL+"/feed.xml", "")

		Convey("The first five items with audio are kept", func() {
			episodes, err := src.Episodes(context.Background())
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 4)
			So(episodes[0].Title, ShouldEqual, "Uno")
			So(episodes[0].Published, ShouldNotBeNil)
			So(episodes[1].AudioURL, ShouldEqual, "https://cdn.example/dos.mp3")
			So(episodes[2].Title, ShouldEqual, "Episodio")
			So(episodes[3].Title, ShouldEqual, "Cinco")
			So(episodes[0].Program, ShouldEqual, Program)

			audio, err := src.AudioURL(context.Background(), episodes[0])
			So(err, ShouldBeNil)
			So(audio, ShouldEqual, "https://anchor.fm/s/1/uno.m4a")
		})

		Convey("A feed error is returned", func() {
			status = http.StatusInternalServerError
			_, err := src.Episodes(context.Background())
			So(err, ShouldNotBeNil)
		})

		Convey("An unresolved episode has no audio", func() {
			_, err := src.AudioURL(context.Background(), &source.Episode{Title: "x"})
			So(err, ShouldEqual, source.ErrNoAudio)
		})
	})
}
