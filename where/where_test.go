package where

import (
	"path/filepath"
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override", func() {
			t.Setenv(EnvConfigPath, "/tmp/radiodl-test-config")
			So(Config(), ShouldEqual, "/tmp/radiodl-test-config")
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Programs()", func() {
			Reset(func() { viper.Set(key.ProgramsFile, "") })

			So(filepath.Base(Programs()), ShouldEqual, ProgramsFilename)

			viper.Set(key.ProgramsFile, "/etc/radiodl/programs.json")
			So(Programs(), ShouldEqual, "/etc/radiodl/programs.json")
		})
	})
}
