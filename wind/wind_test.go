package wind

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/skybound-wx/metar/scan"
)

func TestParse(t *testing.T) {
	Convey("wind groups are parsed correctly", t, func() {
		Convey("a plain direction, speed and unit", func() {
			s := scan.New("31005MPS")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Direction.Degrees(), ShouldEqual, 310)
			So(w.Speed.MetersPerSecondValue(), ShouldEqual, 5)
			So(w.PeakGust, ShouldBeNil)
			So(s.EOF(), ShouldBeTrue)
		})

		Convey("knots with a peak gust", func() {
			s := scan.New("14010G15KT")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Direction.Degrees(), ShouldEqual, 140)
			So(w.Speed.Knots(), ShouldEqual, 10)
			So(w.PeakGust.Knots(), ShouldEqual, 15)
		})

		Convey("a variable direction", func() {
			s := scan.New("VRB15MPS")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Direction, ShouldBeNil)
			So(w.Speed.MetersPerSecondValue(), ShouldEqual, 15)
		})

		Convey("an above-range speed prefix", func() {
			s := scan.New("240P49MPS")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Speed.MetersPerSecondValue(), ShouldEqual, 49)
		})

		Convey("a trailing variance group", func() {
			s := scan.New("22003G08MPS 280V350")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Variance.From.Degrees(), ShouldEqual, 280)
			So(w.Variance.To.Degrees(), ShouldEqual, 350)
			So(s.EOF(), ShouldBeTrue)
		})

		Convey("an unknown gust sentinel is dropped but the wind still parses", func() {
			s := scan.New("28010G//KT")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Speed.Knots(), ShouldEqual, 10)
			So(w.PeakGust, ShouldBeNil)
		})

		Convey("the all-slash sentinel reports absent wind without error", func() {
			s := scan.New("/////KT")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w, ShouldBeNil)
		})

		Convey("a non-wind group does not match and leaves the cursor alone", func() {
			s := scan.New("BKN020")
			_, ok := Parse(s)
			So(ok, ShouldBeFalse)
			So(s.Pos, ShouldEqual, 0)
		})
	})
}
