package history

import (
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a downloaded episode", t, func() {
		So(Clear(), ShouldBeNil)

		episode := &source.Episode{
			Title:     "Gracia a Vosotros - 14/11/2025",
			Program:   "Gracia a Vosotros",
			ListenURL: "https://www.gracia.org/recursos/1",
		}
		path := "/programas/Gracia_a_Vosotros/Gracia_a_Vosotros_-_14112025.mp3"

		Convey("When saving it", func() {
			err := Save(episode, "https://cdn.gty.org/gracia/podcast/20251114.mp3", path, "downloaded", 2048)

			Convey("Then it is in the ledger under its path", func() {
				So(err, ShouldBeNil)

				entries, err := Get()
				So(err, ShouldBeNil)
				So(entries, ShouldContainKey, path)
				So(entries[path].Title, ShouldEqual, episode.Title)
				So(entries[path].Size, ShouldEqual, int64(2048))

				Convey("And saving it again keeps one entry", func() {
					So(Save(episode, "https://cdn.gty.org/x.mp3", path, "downloaded", 4096), ShouldBeNil)

					sorted, err := Sorted()
					So(err, ShouldBeNil)
					So(sorted, ShouldHaveLength, 1)
					So(sorted[0].URL, ShouldEqual, "https://cdn.gty.org/x.mp3")
				})

				Convey("And removing it empties the ledger", func() {
					So(Remove(entries[path]), ShouldBeNil)

					entries, err := Get()
					So(err, ShouldBeNil)
					So(entries, ShouldBeEmpty)
				})
			})
		})
	})
}
