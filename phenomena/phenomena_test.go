package phenomena

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/skybound-wx/metar/scan"
)

func TestParse(t *testing.T) {
	Convey("weather atoms are parsed correctly", t, func() {
		Convey("a plain precipitation code", func() {
			s := scan.New("RA")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Intensity, ShouldEqual, Moderate)
			So(w.Kind, ShouldEqual, PrecipitationCondition)
			So(w.Precipitation, ShouldResemble, []Precipitation{Rain})
		})

		Convey("a heavy shower of multiple precipitation types", func() {
			s := scan.New("+SHRASN")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Intensity, ShouldEqual, Heavy)
			So(*w.Descriptor, ShouldEqual, Showers)
			So(w.Precipitation, ShouldResemble, []Precipitation{Rain, Snow})
		})

		Convey("a light obscuration", func() {
			s := scan.New("-FG")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Intensity, ShouldEqual, Light)
			So(w.Kind, ShouldEqual, ObscurationCondition)
			So(w.Obscuration, ShouldEqual, Fog)
		})

		Convey("a vicinity thunderstorm with no condition", func() {
			s := scan.New("VCTS")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Vicinity, ShouldBeTrue)
			So(*w.Descriptor, ShouldEqual, Thunderstorm)
			So(w.Kind, ShouldEqual, NoCondition)
		})

		Convey("an other-phenomenon code", func() {
			s := scan.New("DS")
			w, ok := Parse(s)
			So(ok, ShouldBeTrue)
			So(w.Kind, ShouldEqual, OtherCondition)
			So(w.Other, ShouldEqual, Duststorm)
		})
	})
}

func TestParseRecent(t *testing.T) {
	Convey("recent weather groups are parsed correctly", t, func() {
		Convey("a recent-weather-wrapped atom", func() {
			s := scan.New("RETS")
			w, ok := ParseRecent(s)
			So(ok, ShouldBeTrue)
			So(*w.Descriptor, ShouldEqual, Thunderstorm)
		})

		Convey("the garbled recent-weather sentinel", func() {
			s := scan.New("RE//")
			w, ok := ParseRecent(s)
			So(ok, ShouldBeTrue)
			So(w, ShouldBeNil)
		})
	})
}
