package metar

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// parseAccumulatedRainfall recognizes the "RF" group: "RF" followed by a
// recent-accumulation decimal, a slash, and a reference-period decimal,
// both in millimeters.
func parseAccumulatedRainfall(s *scan.Scanner) (*AccumulatedRainfall, bool) {
	mark := s.Mark()
	if !s.Literal("RF") {
		return nil, false
	}
	recent, ok := decimalDigits(s)
	if !ok || !s.Literal("/") {
		s.Reset(mark)
		return nil, false
	}
	past, ok := decimalDigits(s)
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	recentVal, _ := strconv.ParseFloat(recent, 64)
	pastVal, _ := strconv.ParseFloat(past, 64)
	return &AccumulatedRainfall{
		Recent: units.LengthMillimeters(recentVal),
		Past:   units.LengthMillimeters(pastVal),
	}, true
}

func decimalDigits(s *scan.Scanner) (string, bool) {
	mark := s.Mark()
	whole, ok := s.OneOrMoreDigits()
	if !ok {
		return "", false
	}
	if !s.Literal(".") {
		s.Reset(mark)
		return "", false
	}
	frac, ok := s.OneOrMoreDigits()
	if !ok {
		s.Reset(mark)
		return "", false
	}
	return whole + "." + frac, true
}
