package clouds

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/skybound-wx/metar/scan"
)

func TestParse(t *testing.T) {
	Convey("cloud cover groups are parsed correctly", t, func() {
		Convey("coverage alone", func() {
			s := scan.New("SKC")
			c, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(c.Coverage, ShouldEqual, SKC)
			So(c.Base, ShouldBeNil)
		})

		Convey("coverage with a base and no type", func() {
			s := scan.New("BKN020")
			c, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(c.Coverage, ShouldEqual, BKN)
			So(c.Base.Feet(), ShouldEqual, 2000)
			So(c.Type, ShouldBeNil)
		})

		Convey("coverage with a base and a convective type", func() {
			s := scan.New("FEW035CB")
			c, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(c.Base.Feet(), ShouldEqual, 3500)
			So(*c.Type, ShouldEqual, Cumulonimbus)
		})

		Convey("the legacy FW synonym normalizes to FEW", func() {
			s := scan.New("FW020")
			c, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(c.Coverage, ShouldEqual, FEW)
		})

		Convey("the legacy SC synonym normalizes to SCT", func() {
			s := scan.New("SC020")
			c, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(c.Coverage, ShouldEqual, SCT)
		})

		Convey("a garbled base reports no base height", func() {
			s := scan.New("OVC///")
			c, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(c.Coverage, ShouldEqual, OVC)
			So(c.Base, ShouldBeNil)
		})

		Convey("a fully garbled layer reports no layer at all", func() {
			s := scan.New("///CB")
			c, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(c, ShouldBeNil)
		})

		Convey("a non-cloud group does not match", func() {
			s := scan.New("28010KT")
			_, ok := Parse(s)
			So(ok, ShouldBeFalse)
			So(s.Pos, ShouldEqual, 0)
		})
	})
}
