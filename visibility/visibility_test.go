package visibility

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

func TestParse(t *testing.T) {
	Convey("visibility groups are parsed correctly", t, func() {
		Convey("a plain meter reading with no unit", func() {
			s := scan.New("9999")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing.Distance.Meters(), ShouldEqual, 9999)
			So(v.Prevailing.OutOfRange, ShouldEqual, None)
		})

		Convey("statute miles with a whole-number-plus-fraction", func() {
			s := scan.New("1 1/2SM")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing.Distance.Value(), ShouldEqual, 1.5)
		})

		Convey("statute miles with a fraction only", func() {
			s := scan.New("1/2SM")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing.Distance.Value(), ShouldEqual, 0.5)
		})

		Convey("an out-of-range bound", func() {
			s := scan.New("M1/4SM")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing.OutOfRange, ShouldEqual, Less)
		})

		Convey("a directional minimum alone", func() {
			s := scan.New("1000N")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing, ShouldBeNil)
			So(v.MinimumDirectional.Direction, ShouldEqual, N)
			So(v.MinimumDirectional.Distance.Distance.Meters(), ShouldEqual, 1000)
		})

		Convey("minimum and maximum directional without a prevailing reading", func() {
			s := scan.New("1000N 1200S")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing, ShouldBeNil)
			So(v.MinimumDirectional.Direction, ShouldEqual, N)
			So(v.MaximumDirectional.Direction, ShouldEqual, S)
		})

		Convey("prevailing with a single directional minimum", func() {
			s := scan.New("9999 1500NW")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing.Distance.Meters(), ShouldEqual, 9999)
			So(v.MinimumDirectional.Direction, ShouldEqual, NW)
			So(v.MaximumDirectional, ShouldBeNil)
		})

		Convey("the NDV no-directional-data sentinel", func() {
			s := scan.New("9999NDV")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v, ShouldBeNil)
		})

		Convey("the slash-run sentinel", func() {
			s := scan.New("////M")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v, ShouldBeNil)
		})

		Convey("kilometers", func() {
			s := scan.New("10KM")
			v, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(v.Prevailing.Distance.Unit(), ShouldEqual, units.Kilometers)
		})
	})
}
