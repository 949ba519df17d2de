package programs

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const sample = `{
  "radio_programs": [
    {"name": "Gracia a Vosotros", "url": "https://www.gracia.org/", "enabled": true, "description": "John MacArthur"},
    {"name": "En Contacto", "url": "https://www.encontacto.org/", "enabled": false, "description": "", "max_episodes": 2},
    {"name": "Visión para Vivir", "url": "https://visionparavivir.org/escuche/programa-actual/", "description": "", "cleanup_days": 7}
  ],
  "settings": {
    "download_directory": "/srv/programas",
    "max_episodes_per_program": 3,
    "notify": "telegram"
  }
}`

func open(path string) *Manager {
	m, err := Open(path)
	So(err, ShouldBeNil)
	return m
}

func TestManager(t *testing.T) {
	Convey("Given a programs file", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/config/radio_programs.json", []byte(sample), 0o644), ShouldBeNil)

		m := open("/config/radio_programs.json")

		Convey("It loads programs and fills missing settings", func() {
			So(m.All(), ShouldHaveLength, 3)
			So(lo.Map(m.Enabled(), func(p *Program, _ int) string { return p.Name }), ShouldResemble,
				[]string{"Gracia a Vosotros", "Visión para Vivir"})

			s := m.Settings()
			So(s.DownloadDirectory, ShouldEqual, "/srv/programas")
			So(s.MaxEpisodesPerProgram, ShouldEqual, 3)
			So(s.CleanupOldFiles, ShouldBeTrue)
			So(s.CleanupDays, ShouldEqual, 30)
		})

		Convey("Overrides win over the global settings", func() {
			contacto := m.Find("En Contacto").MustGet()
			vision := m.Find("Visión para Vivir").MustGet()

			So(m.EffectiveMaxEpisodes(contacto), ShouldEqual, 2)
			So(m.EffectiveMaxEpisodes(vision), ShouldEqual, 3)
			So(m.EffectiveCleanupDays(vision), ShouldEqual, 7)
			So(m.EffectiveCleanupDays(contacto), ShouldEqual, 30)
		})

		Convey("Adding then removing restores the program list", func() {
			before := lo.Map(m.All(), func(p *Program, _ int) Program { return *p })

			So(m.Add(Program{Name: "Gracia", URL: "https://gracia.org/"}), ShouldBeNil)
			So(open("/config/radio_programs.json").All(), ShouldHaveLength, 4)

			So(m.Remove("Gracia"), ShouldBeNil)
			after := lo.Map(open("/config/radio_programs.json").All(), func(p *Program, _ int) Program { return *p })
			So(after, ShouldResemble, before)
		})

		Convey("Enabling changes only the enabled field", func() {
			before := *m.Find("En Contacto").MustGet()

			So(m.Enable("En Contacto"), ShouldBeNil)

			after := *open("/config/radio_programs.json").Find("En Contacto").MustGet()
			So(*after.Enabled, ShouldBeTrue)

			after.Enabled = before.Enabled
			So(after, ShouldResemble, before)
		})

		Convey("Saving keeps unknown settings and non-ASCII text", func() {
			So(m.Disable("Gracia a Vosotros"), ShouldBeNil)

			data, err := filesystem.API().ReadFile("/config/radio_programs.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"notify": "telegram"`)
			So(string(data), ShouldContainSubstring, "Visión para Vivir")
			So(string(data), ShouldContainSubstring, "\n  \"radio_programs\"")
		})

		Convey("Saving writes known settings first without HTML escaping", func() {
			m.doc.Settings.DownloadDirectory = "/srv/R&B <radio>"
			So(m.Save(), ShouldBeNil)

			data, err := filesystem.API().ReadFile("/config/radio_programs.json")
			So(err, ShouldBeNil)

			text := string(data)
			So(text, ShouldContainSubstring, `"download_directory": "/srv/R&B <radio>"`)
			So(text, ShouldNotContainSubstring, `\u0026`)
			So(strings.Index(text, `"download_directory"`), ShouldBeLessThan, strings.Index(text, `"notify"`))
			So(strings.Index(text, `"cleanup_days"`), ShouldBeLessThan, strings.Index(text, `"notify"`))

			So(open("/config/radio_programs.json").Settings().DownloadDirectory, ShouldEqual, "/srv/R&B <radio>")
		})

		Convey("Unknown names are reported with a suggestion", func() {
			err := m.Remove("gracia a vosotro")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)

			var notFound *NotFoundError
			So(errors.As(err, &notFound), ShouldBeTrue)
			So(notFound.Suggestion.OrEmpty(), ShouldEqual, "Gracia a Vosotros")

			So(m.Enable("Nada parecido aquí"), ShouldNotBeNil)
			So(m.All(), ShouldHaveLength, 3)
		})

		Convey("Duplicate names: remove drops all, enable touches the first", func() {
			So(m.Add(Program{Name: "En Contacto", URL: "https://encontacto.org/2", Enabled: lo.ToPtr(false)}), ShouldBeNil)

			So(m.Enable("En Contacto"), ShouldBeNil)
			dupes := lo.Filter(m.All(), func(p *Program, _ int) bool { return p.Name == "En Contacto" })
			So(dupes[0].IsEnabled(), ShouldBeTrue)
			So(dupes[1].IsEnabled(), ShouldBeFalse)

			So(m.Remove("En Contacto"), ShouldBeNil)
			So(m.Find("En Contacto").IsPresent(), ShouldBeFalse)
		})
	})

	Convey("A missing file gives the defaults", t, func() {
		filesystem.SetMemMapFs()

		m := open("/nowhere/radio_programs.json")
		So(m.All(), ShouldBeEmpty)
		So(m.Settings(), ShouldResemble, DefaultSettings())
	})

	Convey("A malformed file is an error", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/bad.json", []byte(`{"radio_programs": [`), 0o644), ShouldBeNil)

		_, err := Open("/bad.json")
		So(err, ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema describes both sections", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)

		text := string(data)
		So(text, ShouldContainSubstring, "radio_programs")
		So(text, ShouldContainSubstring, "max_episodes_per_program")
		So(strings.Contains(text, "extra"), ShouldBeFalse)
	})
}
