package config

import (
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.DownloaderAttempts), ShouldEqual, 3)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("downloader.retry_delay")
			So(result, ShouldEqual, "downloader_retry_delay")
		})

		Convey("Should honour the legacy directory variable", func() {
			t.Setenv(EnvDirectory, "/srv/radio")
			_ = Setup()
			So(viper.GetString(key.DownloadDirectory), ShouldEqual, "/srv/radio")
		})
	})
}

func TestFallbackURLs(t *testing.T) {
	Convey("Given fallback program URLs", t, func() {
		Reset(func() {
			viper.Set(key.ProgramsFallbackURLs, []string{})
		})

		Convey("A semicolon separated string is split", func() {
			viper.Set(key.ProgramsFallbackURLs, "https://gracia.org/ ; https://www.twr360.org/programs;")
			So(FallbackURLs(), ShouldResemble, []string{"https://gracia.org/", "https://www.twr360.org/programs"})
		})

		Convey("A list is kept in order", func() {
			viper.Set(key.ProgramsFallbackURLs, []string{"https://a.example", "https://b.example;https://c.example"})
			So(FallbackURLs(), ShouldResemble, []string{"https://a.example", "https://b.example", "https://c.example"})
		})

		Convey("Nothing set yields nothing", func() {
			So(FallbackURLs(), ShouldBeEmpty)
		})
	})
}

func TestFieldParse(t *testing.T) {
	Convey("Parse follows the default's type", t, func() {
		attempts := Default[key.DownloaderAttempts]
		v, err := attempts.Parse([]string{"4"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 4)

		_, err = attempts.Parse([]string{"cuatro"})
		So(err, ShouldNotBeNil)

		progress := Default[key.DownloaderProgress]
		v, err = progress.Parse([]string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		hosts := Default[key.DownloaderLargeHosts]
		v, err = hosts.Parse([]string{"podbean.com; libsyn.com"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"podbean.com", "libsyn.com"})

		_, err = hosts.Parse(nil)
		So(err, ShouldNotBeNil)
	})

	Convey("Closest suggests a registered key", t, func() {
		So(Closest("downloader.atempts"), ShouldEqual, key.DownloaderAttempts)
	})
}
