package scan

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRequiredWhitespace(t *testing.T) {
	Convey("required whitespace tolerates real-world garbage", t, func() {
		Convey("a plain space is whitespace", func() {
			s := New(" KJFK")
			So(s.RequiredWhitespace(), ShouldBeTrue)
			So(s.Pos, ShouldEqual, 1)
		})

		Convey("CRLF, LF and tab are all whitespace", func() {
			for _, input := range []string{"\r\nKJFK", "\nKJFK", "\tKJFK"} {
				s := New(input)
				So(s.RequiredWhitespace(), ShouldBeTrue)
				So(s.Remaining(), ShouldEqual, "KJFK")
			}
		})

		Convey("a stray '>' is consumed as whitespace", func() {
			s := New(">KJFK")
			So(s.RequiredWhitespace(), ShouldBeTrue)
			So(s.Remaining(), ShouldEqual, "KJFK")
		})

		Convey("slash-run garbage between spaces is consumed as one whitespace token", func() {
			s := New(" /// / KJFK")
			So(s.RequiredWhitespace(), ShouldBeTrue)
			So(s.Remaining(), ShouldEqual, "KJFK")
		})

		Convey("repeated 'M ' garbage is consumed as one whitespace token", func() {
			s := New(" M M KJFK")
			So(s.RequiredWhitespace(), ShouldBeTrue)
			So(s.Remaining(), ShouldEqual, "KJFK")
		})

		Convey("no whitespace present fails and leaves the cursor untouched", func() {
			s := New("KJFK")
			So(s.RequiredWhitespace(), ShouldBeFalse)
			So(s.Pos, ShouldEqual, 0)
		})

		Convey("Whitespace() never fails, even on no match", func() {
			s := New("KJFK")
			So(func() { s.Whitespace() }, ShouldNotPanic)
			So(s.Pos, ShouldEqual, 0)
		})
	})
}

func TestBacktracking(t *testing.T) {
	Convey("Mark and Reset restore the cursor", t, func() {
		s := New("28016KT")
		mark := s.Mark()
		_, _ = s.Digits(5, 5)
		So(s.Pos, ShouldEqual, 5)
		s.Reset(mark)
		So(s.Pos, ShouldEqual, 0)
	})
}

func TestFurthestFailure(t *testing.T) {
	Convey("the furthest failure position and expectation set are tracked", t, func() {
		s := New("KJFK")
		s.Fail("digit")
		So(s.Error(LexicalMismatch).Offset, ShouldEqual, 0)
		So(s.Error(LexicalMismatch).Expected, ShouldContain, "digit")

		s.Pos = 2
		s.Fail("letter")
		So(s.Error(LexicalMismatch).Offset, ShouldEqual, 2)
		So(s.Error(LexicalMismatch).Expected, ShouldResemble, []string{"letter"})
	})

	Convey("no failure yields a nil error", t, func() {
		s := New("KJFK")
		So(s.Error(LexicalMismatch), ShouldBeNil)
	})
}

func TestOneOf(t *testing.T) {
	Convey("OneOf respects ordering so longer alternatives win before their prefix", t, func() {
		s := New("KTS")
		val, ok := s.OneOf("velocity unit", "MPS", "KTM", "KTS", "KT", "KMH")
		So(ok, ShouldBeTrue)
		So(val, ShouldEqual, "KTS")
		So(s.EOF(), ShouldBeTrue)
	})
}
