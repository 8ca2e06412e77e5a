// Package wind parses the METAR/TAF surface wind group (dddssKT and its
// variants): optional direction, optional speed, optional peak gust, a
// required speed unit, and an optional variance group.
package wind

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// Wind is the surface wind as reported in a METAR/TAF wind group.
type Wind struct {
	Direction *units.Angle
	Speed     *units.Velocity
	PeakGust  *units.Velocity
	Variance  *Variance
}

// Variance is the reported variable-wind-direction range (dddVddd).
type Variance struct {
	From units.Angle
	To   units.Angle
}

// Parse recognizes a wind group at the scanner's current position. It
// returns (nil, true) for the documented all-slash sentinel forms
// ("//////KT", "/////KT"), which are syntactically present but carry no
// wind information; it returns (nil, false) if no wind group is present
// at all, restoring the scanner's position.
func Parse(s *scan.Scanner) (*Wind, bool) {
	mark := s.Mark()

	if w, ok := parseReported(s); ok {
		return w, true
	}
	s.Reset(mark)

	if parseAllSlashSentinel(s) {
		return nil, true
	}
	s.Reset(mark)
	return nil, false
}

func parseAllSlashSentinel(s *scan.Scanner) bool {
	mark := s.Mark()
	if !s.Literal("//////") && !s.Literal("/////") {
		return false
	}
	if _, ok := speedUnit(s); ok {
		return true
	}
	s.Reset(mark)
	return false
}

func parseReported(s *scan.Scanner) (*Wind, bool) {
	mark := s.Mark()
	w := &Wind{}

	if dir, ok := direction(s); ok {
		w.Direction = dir
	}

	speedDigits := speed(s)

	var gustDigits string
	var hasGust, gustUnknown bool
	gustMark := s.Mark()
	if s.Literal("G") {
		if s.Literal("//") {
			hasGust, gustUnknown = true, true
		} else if digits, ok := s.OneOrMoreDigits(); ok {
			gustDigits = digits
			hasGust = true
		} else {
			s.Reset(gustMark)
		}
	}

	unit, ok := speedUnit(s)
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	s.Whitespace()

	if speedDigits != "" {
		value, _ := strconv.ParseFloat(speedDigits, 64)
		v := velocityIn(unit, value)
		w.Speed = &v
	}
	if hasGust && !gustUnknown {
		value, _ := strconv.ParseFloat(gustDigits, 64)
		v := velocityIn(unit, value)
		w.PeakGust = &v
	}

	if variance, ok := parseVariance(s); ok {
		w.Variance = variance
	}

	return w, true
}

// direction recognizes "VRB" (absent direction, variable) or three
// direction digits.
func direction(s *scan.Scanner) (*units.Angle, bool) {
	mark := s.Mark()
	if s.Literal("VRB") {
		return nil, true
	}
	s.Reset(mark)
	if digits, ok := s.DigitsExact(3); ok {
		value, _ := strconv.ParseFloat(digits, 64)
		a := units.AngleDegrees(value)
		return &a, true
	}
	s.Reset(mark)
	return nil, false
}

// speed recognizes "P" + two digits (a speed at or above the two-digit
// report ceiling, e.g. "P99") or one-or-more digits with an optional
// decimal fraction. The "P" prefix carries no offset; it is stripped and
// the digits are used as reported.
func speed(s *scan.Scanner) (digits string) {
	mark := s.Mark()
	if s.Literal("P") {
		if d, ok := s.DigitsExact(2); ok {
			return d
		}
		s.Reset(mark)
	}
	if whole, ok := s.OneOrMoreDigits(); ok {
		fracMark := s.Mark()
		if s.Literal(".") {
			if frac, ok := s.OneOrMoreDigits(); ok {
				return whole + "." + frac
			}
			s.Reset(fracMark)
		}
		return whole
	}
	return ""
}

func speedUnit(s *scan.Scanner) (string, bool) {
	return s.OneOf("velocity unit", "MPS", "KTM", "KTS", "KT", "KMH")
}

func velocityIn(unit string, value float64) units.Velocity {
	switch unit {
	case "MPS":
		return units.VelocityMetersPerSecond(value)
	case "KMH":
		return units.VelocityKilometersPerHour(value)
	default: // KT, KTS, KTM
		return units.VelocityKnots(value)
	}
}

func parseVariance(s *scan.Scanner) (*Variance, bool) {
	mark := s.Mark()
	from, ok := s.OneOrMoreDigits()
	if !ok || !s.Literal("V") {
		s.Reset(mark)
		return nil, false
	}
	to, ok := s.OneOrMoreDigits()
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	fromVal, _ := strconv.ParseFloat(from, 64)
	toVal, _ := strconv.ParseFloat(to, 64)
	return &Variance{From: units.AngleDegrees(fromVal), To: units.AngleDegrees(toVal)}, true
}
