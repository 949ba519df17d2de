package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"0.3.1", "0.3.1", 0},
			{"v0.4.0", "0.3.9", 1},
			{"1.0.0", "1.0.10", -1},
			{"v1.2.0-rc1", "1.2.0", 0},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}

		_, err := Compare("latest", "0.1.0")
		So(err, ShouldNotBeNil)

		_, err = Compare("1.2", "0.1.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Latest reads the release tag and caches it", t, func() {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v9.9.9","name":"radiodl 9.9.9"}`))
		}))
		defer server.Close()

		ReleasesURL = server.URL

		v, err := Latest()
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "9.9.9")

		v, err = Latest()
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "9.9.9")
		So(hits, ShouldEqual, 1)
	})
}
