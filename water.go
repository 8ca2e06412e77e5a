package metar

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// parseWaterConditions recognizes the "W" group, in its two forms: a
// qualitative sea surface state ("S" + a single digit, or "/" when
// garbled), or a significant wave height ("H" + digits, or a run of
// slashes when garbled). Both forms share the same leading sea surface
// temperature field, itself "//" when garbled.
func parseWaterConditions(s *scan.Scanner) (*WaterConditions, bool) {
	mark := s.Mark()
	if !s.Literal("W") {
		return nil, false
	}

	temp, ok := waterTemperature(s)
	if !ok || !s.Literal("/") {
		s.Reset(mark)
		return nil, false
	}

	if s.Literal("S") {
		state, digits := surfaceState(s)
		if !digits {
			s.Reset(mark)
			return nil, false
		}
		wc := &WaterConditions{Temperature: temp}
		if state != nil {
			wc.SurfaceState = state
		}
		return wc, true
	}

	if s.Literal("H") {
		height, ok := waveHeight(s)
		if !ok {
			s.Reset(mark)
			return nil, false
		}
		return &WaterConditions{Temperature: temp, SignificantWaveHeight: height}, true
	}

	s.Reset(mark)
	return nil, false
}

func waterTemperature(s *scan.Scanner) (*units.Temperature, bool) {
	mark := s.Mark()
	if s.Literal("//") {
		return nil, true
	}
	s.Reset(mark)
	digits, ok := s.OneOrMoreDigits()
	if !ok {
		return nil, false
	}
	value, _ := strconv.ParseFloat(digits, 64)
	t := units.TemperatureCelsius(value)
	return &t, true
}

func surfaceState(s *scan.Scanner) (*WaterSurfaceState, bool) {
	mark := s.Mark()
	if s.Literal("/") {
		return nil, true
	}
	s.Reset(mark)
	digit, ok := s.Digits(1, 1)
	if !ok {
		return nil, false
	}
	state := WaterSurfaceState(digit)
	return &state, true
}

func waveHeight(s *scan.Scanner) (*units.Length, bool) {
	mark := s.Mark()
	if s.Literal("/") {
		for s.Literal("/") {
		}
		return nil, true
	}
	s.Reset(mark)
	digits, ok := s.OneOrMoreDigits()
	if !ok {
		return nil, false
	}
	value, _ := strconv.ParseFloat(digits, 64)
	l := units.LengthDecimeters(value)
	return &l, true
}
