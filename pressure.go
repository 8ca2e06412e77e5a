package metar

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// parsePressure recognizes an altimeter-setting group. It returns
// (nil, true) for the documented no-data forms ("A////", "Q////",
// "QNH NIL", and so on); (nil, false) if no pressure group is present.
//
// The source grammar this parser is ported from swaps the physical unit
// each prefix implies: it reports "A" readings in hectopascals and
// divides "Q"/"QNH"/"QFE" readings by 100 into inches of mercury, which
// is backwards from how altimeter settings are actually reported (A is
// always inches of mercury in hundredths, Q is always hectopascals).
// This parser uses the corrected mapping.
func parsePressure(s *scan.Scanner) (*units.Pressure, bool) {
	mark := s.Mark()
	unit, ok := pressureUnit(s)
	if !ok {
		return nil, false
	}
	s.Whitespace()

	if digits, ok := pressureDigits(s); ok {
		value, _ := strconv.ParseFloat(digits, 64)
		var p units.Pressure
		if unit == "A" {
			p = units.PressureInchesOfMercury(value / 100)
		} else {
			p = units.PressureHectopascals(value)
		}
		return &p, true
	}

	if s.Literal("////") || s.Literal("NIL") {
		return nil, true
	}

	s.Reset(mark)
	return nil, false
}

func pressureUnit(s *scan.Scanner) (string, bool) {
	return s.OneOf("pressure unit", "QFE", "QNH", "Q", "A")
}

func pressureDigits(s *scan.Scanner) (string, bool) {
	whole, ok := s.OneOrMoreDigits()
	if !ok {
		return "", false
	}
	fracMark := s.Mark()
	if s.Literal(".") {
		if frac, ok := s.OneOrMoreDigits(); ok {
			return whole + "." + frac, true
		}
		s.Reset(fracMark)
	}
	return whole, true
}
