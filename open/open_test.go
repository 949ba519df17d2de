package open

import (
	"path/filepath"
	"testing"

	"github.com/radiodl-cli/radiodl/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Command picks the platform handler", t, func() {
		cmd, err := Command(constant.Linux, "/programas")
		So(err, ShouldBeNil)
		So(filepath.Base(cmd.Path), ShouldEqual, "xdg-open")
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "/programas"})

		cmd, err = Command(constant.Darwin, "https://gracia.org")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "https://gracia.org"})

		_, err = Command("plan9", "/programas")
		So(err, ShouldNotBeNil)
	})
}
