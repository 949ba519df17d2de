package provider

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/provider/rss"
	"github.com/radiodl-cli/radiodl/provider/twr360"
	"github.com/radiodl-cli/radiodl/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestIsSupported(t *testing.T) {
	Convey("Every table key is supported", t, func() {
		for _, p := range Builtins() {
			So(IsSupported("https://"+p.Domain+"/programa"), ShouldBeTrue)
			So(IsSupported("https://www."+p.Domain+"/programa"), ShouldBeTrue)
		}
	})

	Convey("An unmapped domain is not supported", t, func() {
		So(IsSupported("https://example.com/podcast"), ShouldBeFalse)
		So(IsSupported(""), ShouldBeFalse)
	})

	Convey("Feed-looking hosts fall back to the generic feed reader", t, func() {
		So(IsSupported("https://feeds.megaphone.fm/abc"), ShouldBeTrue)
		So(IsSupported("https://rss.art19.com/show"), ShouldBeTrue)
	})
}

func TestCreate(t *testing.T) {
	Convey("Given a table domain", t, func() {
		Convey("Create uses the default program name", func() {
			src, err := Create("https://www.twr360.org/ministries/1")
			So(err, ShouldBeNil)
			So(src, ShouldHaveSameTypeAs, &twr360.Source{})
			So(src.Name(), ShouldEqual, twr360.Program)
			So(src.URL(), ShouldEqual, "https://www.twr360.org/ministries/1")
		})

		Convey("CreateNamed keeps the configured name", func() {
			src, err := CreateNamed("https://twr360.org/x", "Mi Programa")
			So(err, ShouldBeNil)
			So(src.Name(), ShouldEqual, "Mi Programa")
		})

		Convey("Hosts are matched case-insensitively", func() {
			src, err := Create("HTTPS://Anchor.FM/s/123/podcast/rss")
			So(err, ShouldBeNil)
			So(src, ShouldHaveSameTypeAs, &rss.Source{})
		})
	})

	Convey("Given an unmapped domain", t, func() {
		_, err := Create("https://example.com/podcast")

		So(err, ShouldNotBeNil)
		So(errors.Is(err, ErrUnsupported), ShouldBeTrue)

		var unsupported *UnsupportedError
		So(errors.As(err, &unsupported), ShouldBeTrue)
		So(unsupported.Domain, ShouldEqual, "example.com")
	})

	Convey("Given a custom Lua source for a domain", t, func() {
		path := filepath.Join(where.Sources(), "radio.example.lua")
		So(filesystem.API().WriteFile(path, []byte(`function Episodes(url) return {} end`), 0o644), ShouldBeNil)
		Reset(func() { _ = filesystem.API().Remove(path) })

		So(IsSupported("https://www.radio.example/programas"), ShouldBeTrue)
		So(Customs(), ShouldContain, "radio.example")

		src, err := Create("https://radio.example/programas")
		So(err, ShouldBeNil)
		So(src.Name(), ShouldEqual, "radio.example")
	})

	Convey("Given a custom Lua source that does not load", t, func() {
		broken := filepath.Join(where.Sources(), "broken.example.lua")
		missing := filepath.Join(where.Sources(), "missing.example.lua")
		So(filesystem.API().WriteFile(broken, []byte(`function Episodes(url`), 0o644), ShouldBeNil)
		So(filesystem.API().WriteFile(missing, []byte(`local x = 1`), 0o644), ShouldBeNil)
		Reset(func() {
			_ = filesystem.API().Remove(broken)
			_ = filesystem.API().Remove(missing)
		})

		Convey("IsSupported agrees with Create", func() {
			for _, u := range []string{"https://broken.example/", "https://missing.example/"} {
				_, err := Create(u)
				So(err, ShouldNotBeNil)
				So(IsSupported(u), ShouldBeFalse)
			}
		})
	})
}

func TestDomains(t *testing.T) {
	Convey("Domains lists bare and www. variants in order", t, func() {
		domains := Domains()

		So(domains, ShouldHaveLength, 2*len(Builtins()))
		So(domains, ShouldContain, "gracia.org")
		So(domains, ShouldContain, "www.gracia.org")

		for i := 1; i < len(domains); i++ {
			So(domains[i-1] <= domains[i], ShouldBeTrue)
		}
	})

	Convey("Get finds a table entry", t, func() {
		p, ok := Get("encontacto.org")
		So(ok, ShouldBeTrue)
		So(p.Program, ShouldEqual, "En Contacto")

		_, ok = Get("kek")
		So(ok, ShouldBeFalse)
	})
}
