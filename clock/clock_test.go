package clock

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("a day matching today uses today's month and year", t, func() {
		now := time.Now().UTC()
		got := Resolve(now.Day(), 12, 30)
		So(got.Year(), ShouldEqual, now.Year())
		So(got.Month(), ShouldEqual, now.Month())
		So(got.Day(), ShouldEqual, now.Day())
		So(got.Hour(), ShouldEqual, 12)
		So(got.Minute(), ShouldEqual, 30)
	})

	Convey("hour 24 rolls to midnight of the following day", t, func() {
		now := time.Now().UTC()
		got := Resolve(now.Day(), 24, 0)
		expected := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		So(got.Equal(expected), ShouldBeTrue)
	})

	Convey("a day matching tomorrow resolves against tomorrow's month", t, func() {
		now := time.Now().UTC()
		tomorrow := now.AddDate(0, 0, 1)
		got := Resolve(tomorrow.Day(), 0, 0)
		So(got.Month(), ShouldEqual, tomorrow.Month())
		So(got.Year(), ShouldEqual, tomorrow.Year())
	})
}
