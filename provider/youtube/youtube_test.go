package youtube

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const dump = `{"id":"a1","title":"Devocional: Confía","duration":150}
not json
{"id":"b2","title":"Predicación completa","duration":3600.0}
{"id":"c3","title":"Sin duración","duration":null}
{"title":"sin id"}

{"id":"d4","title":"Justo tres minutos","duration":180}
`

func TestYouTube(t *testing.T) {
	Convey("Given a yt-dlp listing", t, func() {
		var args []string
		run := func(_ context.Context, name string, a ...string) ([]byte, error) {
			args = append([]string{name}, a...)
			return []byte(dump), nil
		}

		Convey("Every video with an id becomes a watch URL", func() {
			src := New("https://www.youtube.com/@canal/videos", "Canal").(*Source)
			src.Run = run

			videos, err := src.Episodes(context.Background())
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 4)
			So(videos[0].AudioURL, ShouldEqual, "https://www.youtube.com/watch?v=a1")
			So(videos[0].Duration, ShouldEqual, 150*time.Second)
			So(videos[2].Duration, ShouldEqual, 0)
			So(args, ShouldResemble, []string{"yt-dlp", "--dump-json", "--flat-playlist", "--playlist-end", "20", "--no-warnings", "https://www.youtube.com/@canal/videos"})
		})

		Convey("Devotionals keep known durations up to three minutes", func() {
			src := NewDevotionals("https://www.youtube.com/@carlosruiz", "").(*Source)
			src.Run = run

			videos, err := src.Episodes(context.Background())
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos[0].Title, ShouldEqual, "Devocional: Confía")
			So(videos[1].Title, ShouldEqual, "Justo tres minutos")
			So(videos[1].Program, ShouldEqual, Program)

			audio, err := src.AudioURL(context.Background(), videos[0])
			So(err, ShouldBeNil)
			So(audio, ShouldEqual, "https://www.youtube.com/watch?v=a1")
		})

		Convey("A failing yt-dlp is reported", func() {
			src := New("https://www.youtube.com/@canal", "").(*Source)
			src.Run = func(context.Context, string, ...string) ([]byte, error) {
				return nil, errors.New("executable file not found")
			}

			_, err := src.Episodes(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}
