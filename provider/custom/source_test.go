package custom

import (
	"context"
	"io"
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/source"
	. "github.com/smartystreets/goconvey/convey"
)

const script = `
function Episodes(url)
	return {
		{ title = "Directo", audio_url = url .. "/directo.mp3" },
		{ title = "Pagina", listen_url = url .. "/pagina" },
		{ audio_url = "sin titulo" },
	}
end

function AudioURL(episode)
	if episode.listen_url:find("pagina") then
		return episode.listen_url .. ".mp3"
	end
	return ""
end
`

func TestLuaSource(t *testing.T) {
	Convey("Given a Lua source on disk", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		ctx := context.Background()
		So(filesystem.API().WriteFile("/sources/radio.example.lua", []byte(script), 0o644), ShouldBeNil)

		src, err := LoadSource("/sources/radio.example.lua", "https://radio.example", "")
		So(err, ShouldBeNil)
		So(src.Name(), ShouldEqual, "radio.example")
		So(src.URL(), ShouldEqual, "https://radio.example")

		Convey("Episodes skips malformed entries", func() {
			episodes, err := src.Episodes(ctx)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 2)
			So(episodes[0].AudioURL, ShouldEqual, "https://radio.example/directo.mp3")
			So(episodes[0].Program, ShouldEqual, "radio.example")

			Convey("and AudioURL defers to the script for listen pages", func() {
				audio, err := src.AudioURL(ctx, episodes[1])
				So(err, ShouldBeNil)
				So(audio, ShouldEqual, "https://radio.example/pagina.mp3")

				_, err = src.AudioURL(ctx, &source.Episode{Title: "x", ListenURL: "https://radio.example/otra"})
				So(err, ShouldEqual, source.ErrNoAudio)
			})
		})

		Convey("Close releases the Lua state once", func() {
			closer, ok := src.(io.Closer)
			So(ok, ShouldBeTrue)

			So(closer.Close(), ShouldBeNil)
			So(src.(*luaSource).state.IsClosed(), ShouldBeTrue)
			So(closer.Close(), ShouldBeNil)
		})

		Convey("A script without Episodes is rejected", func() {
			So(filesystem.API().WriteFile("/sources/empty.lua", []byte(`x = 1`), 0o644), ShouldBeNil)
			_, err := LoadSource("/sources/empty.lua", "https://x", "")
			So(err, ShouldNotBeNil)
		})
	})
}
