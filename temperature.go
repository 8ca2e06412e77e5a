package metar

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// parseTemperature recognizes a single signed temperature reading: an
// optional "M" or "-" minus sign, followed by one-or-more digits.
func parseTemperature(s *scan.Scanner) (units.Temperature, bool) {
	mark := s.Mark()
	negative := s.Literal("M") || s.Literal("-")
	digits, ok := s.OneOrMoreDigits()
	if !ok {
		s.Reset(mark)
		return units.Temperature{}, false
	}
	value, _ := strconv.ParseFloat(digits, 64)
	if negative {
		value = -value
	}
	return units.TemperatureCelsius(value), true
}

// parseTemperatures recognizes the air/dewpoint group, in the grammar's
// three alternatives: air temperature followed by a garbled dewpoint
// ("XX" or "//"), air temperature with an optional real dewpoint, and
// the fully garbled "XX/XX" sentinel. The garbled-dewpoint and
// with-dewpoint forms both end in a negative lookahead against the
// visibility and wind-speed unit keywords, so a temperature group never
// swallows the start of an adjacent group that happens to parse as
// digits followed by a letter run.
func parseTemperatures(s *scan.Scanner) (*Temperatures, bool) {
	mark := s.Mark()

	if air, ok := parseTemperature(s); ok {
		if s.Literal("/") || s.Literal(".") {
			if s.Literal("XX") || s.Literal("//") {
				if !followedByVisibilityOrWindUnit(s) {
					return &Temperatures{Air: air}, true
				}
			}
		}
	}
	s.Reset(mark)

	if air, ok := parseTemperature(s); ok {
		if s.Literal("/") || s.Literal(".") {
			dm := s.Mark()
			dewpoint, hasDewpoint := parseTemperature(s)
			if !hasDewpoint {
				s.Reset(dm)
			}
			if !followedByVisibilityOrWindUnit(s) {
				t := &Temperatures{Air: air}
				if hasDewpoint {
					t.Dewpoint = &dewpoint
				}
				return t, true
			}
		}
	}
	s.Reset(mark)

	if s.Literal("XX/XX") {
		return nil, true
	}
	s.Reset(mark)
	return nil, false
}

// followedByVisibilityOrWindUnit peeks ahead (without consuming) for a
// visibility or wind-speed unit keyword immediately following.
func followedByVisibilityOrWindUnit(s *scan.Scanner) bool {
	for _, lit := range []string{"KM", "SM", "M", "MPS", "KTM", "KTS", "KT", "KMH"} {
		if s.Literal(lit) {
			s.Pos -= len(lit)
			return true
		}
	}
	return false
}
