package metar

import (
	"github.com/skybound-wx/metar/clouds"
	"github.com/skybound-wx/metar/phenomena"
	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/visibility"
	"github.com/skybound-wx/metar/wind"
)

// nosigSpellings lists every misspelling of "no significant change" seen
// in real bulletins, in addition to the correct "NOSIG", all of which
// this parser treats identically.
var nosigSpellings = []string{"NOSIG", "NOISIG", "N0SIG", "NOS16", "NOSING", "NOSG", "NSG"}

// parseTrend recognizes a single trend group: the no-significant-change
// sentinel (in any of its real-world misspellings), or a BECMG/TEMPO
// forecast body.
func parseTrend(s *scan.Scanner) (*Trend, bool) {
	mark := s.Mark()
	if _, ok := s.OneOf("trend", nosigSpellings...); ok {
		return &Trend{Kind: NoSignificantChange}, true
	}
	s.Reset(mark)

	kindWord, ok := s.OneOf("trend", "BECMG", "TEMPO")
	if !ok {
		return nil, false
	}
	s.Whitespace()

	report := &TrendReport{}

	if t, ok := parseTrendTime(s); ok {
		report.Time = t
	}
	s.Whitespace()

	if w, ok := wind.Parse(s); ok {
		report.Wind = w
	}
	s.Whitespace()

	if v, ok := visibility.Parse(s); ok {
		report.Visibility = v
	}
	s.Whitespace()

	report.Weather = parseWeatherSequence(s)
	s.Whitespace()

	s.Literal("NSW")
	s.Whitespace()

	for {
		m := s.Mark()
		cover, ok := clouds.Parse(s)
		if !ok {
			s.Reset(m)
			break
		}
		if cover != nil {
			report.CloudCover = append(report.CloudCover, *cover)
		}
		s.Whitespace()
	}

	if cs, ok := colorState(s); ok {
		report.ColorState = &cs
	}
	s.Whitespace()

	kind := Becoming
	if kindWord == "TEMPO" {
		kind = Temporarily
	}
	return &Trend{Kind: kind, Report: report}, true
}

func parseTrendTime(s *scan.Scanner) (*TrendTime, bool) {
	mark := s.Mark()
	val, ok := s.OneOf("trend time type", "AT", "FM", "TL")
	if !ok {
		return nil, false
	}
	time, ok := parseZuluTime(s)
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	return &TrendTime{TimeType: TrendTimeType(val), Time: time}, true
}

// parseWeatherSequence parses a whitespace-separated run of one or more
// weather atoms. It returns nil (not an empty slice) when none are
// present, matching the grammar's optional sequence.
func parseWeatherSequence(s *scan.Scanner) []phenomena.Weather {
	var result []phenomena.Weather
	for {
		m := s.Mark()
		if len(result) > 0 && !s.RequiredWhitespace() {
			s.Reset(m)
			break
		}
		w, ok := phenomena.Parse(s)
		if !ok {
			s.Reset(m)
			break
		}
		result = append(result, *w)
	}
	return result
}
