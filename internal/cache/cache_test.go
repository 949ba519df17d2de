package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/radiodl-cli/radiodl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

type entry struct {
	FeedURL string `json:"feed_url"`
}

func TestCache(t *testing.T) {
	Convey("Given an in-memory cache", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		Convey("Keys ignore case and spaces", func() {
			So(Key("Temas Bíblicos", "itunes"), ShouldEqual, Key("temasbíblicos", "itunes"))
			So(Key("a", "itunes"), ShouldNotEqual, Key("a", "other"))
		})

		Convey("A written entry reads back", func() {
			k := Key("temas biblicos", "itunes")
			So(Write(k, entry{FeedURL: "https://feeds.acast.com/x"}), ShouldBeNil)

			var got entry
			So(Read(k, &got), ShouldBeTrue)
			So(got.FeedURL, ShouldEqual, "https://feeds.acast.com/x")
		})

		Convey("Expired entries are ignored and collected", func() {
			k := Key("old", "itunes")
			So(Write(k, entry{FeedURL: "x"}), ShouldBeNil)

			path := filepath.Join(dir(), k)
			old := time.Now().Add(-TTL - time.Hour)
			So(filesystem.API().Chtimes(path, old, old), ShouldBeNil)

			var got entry
			So(Read(k, &got), ShouldBeFalse)

			CollectGarbage()
			exists, _ := filesystem.API().Exists(path)
			So(exists, ShouldBeFalse)
		})

		Convey("A missing entry is a miss", func() {
			var got entry
			So(Read(Key("nope", "itunes"), &got), ShouldBeFalse)
		})
	})
}
