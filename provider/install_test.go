package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/network"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInstall(t *testing.T) {
	Convey("Given a server hosting a script", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`function Episodes(url) return {} end`))
		}))
		defer server.Close()

		session := network.NewSession(installTimeout)
		ctx := context.Background()

		Convey("It is saved under its own name", func() {
			path, changed, err := Install(ctx, session, server.URL+"/scripts/podcast.example.lua")
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(path, ShouldEndWith, "podcast.example.lua")
			Reset(func() { _ = filesystem.API().Remove(path) })

			So(IsSupported("https://podcast.example/"), ShouldBeTrue)

			Convey("and a second install changes nothing", func() {
				_, changed, err := Install(ctx, session, server.URL+"/scripts/podcast.example.lua")
				So(err, ShouldBeNil)
				So(changed, ShouldBeFalse)
			})
		})

		Convey("Non-Lua URLs are rejected", func() {
			_, _, err := Install(ctx, session, server.URL+"/scripts/podcast.txt")
			So(err, ShouldNotBeNil)
		})
	})
}
