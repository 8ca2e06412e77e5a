package runway

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/skybound-wx/metar/scan"
)

func TestParseVisibility(t *testing.T) {
	Convey("runway visual range groups are parsed correctly", t, func() {
		Convey("a fixed reading in feet", func() {
			s := scan.New("R26L/0600FT")
			v, ok := ParseVisibility(s)
			So(ok, ShouldBeTrue)
			So(v.Designator, ShouldEqual, "26L")
			So(v.Kind, ShouldEqual, Fixed)
			So(v.Reading.Distance.Feet(), ShouldEqual, 600)
		})

		Convey("a varying range with a trend", func() {
			s := scan.New("R26L/0600V1000FT/U")
			v, ok := ParseVisibility(s)
			So(ok, ShouldBeTrue)
			So(v.Kind, ShouldEqual, Varying)
			So(v.Lower.Distance.Feet(), ShouldEqual, 600)
			So(v.Upper.Distance.Feet(), ShouldEqual, 1000)
			So(v.Trend, ShouldEqual, Upward)
		})

		Convey("an out-of-range bound", func() {
			s := scan.New("R26L/M0050FT")
			v, ok := ParseVisibility(s)
			So(ok, ShouldBeTrue)
			So(v.Reading.OutOfRange, ShouldEqual, Less)
		})

		Convey("a missing designator with a slash-run sentinel", func() {
			s := scan.New("R/////")
			v, ok := ParseVisibility(s)
			So(ok, ShouldBeTrue)
			So(v, ShouldBeNil)
		})

		Convey("a non-runway group does not match", func() {
			s := scan.New("28010KT")
			_, ok := ParseVisibility(s)
			So(ok, ShouldBeFalse)
			So(s.Pos, ShouldEqual, 0)
		})
	})
}

func TestParseReport(t *testing.T) {
	Convey("runway condition reports are parsed correctly", t, func() {
		Convey("a cleared runway with a friction reading", func() {
			s := scan.New("R26L/CLRD60")
			r, ok := ParseReport(s)
			So(ok, ShouldBeTrue)
			So(r.Designator, ShouldEqual, "26L")
			So(*r.Friction, ShouldEqual, 60)
		})

		Convey("a garbled friction reading", func() {
			s := scan.New("R26L/CLRD//")
			r, ok := ParseReport(s)
			So(ok, ShouldBeTrue)
			So(r.Friction, ShouldBeNil)
		})
	})
}
