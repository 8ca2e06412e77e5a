package metar

import (
	"strconv"

	"github.com/skybound-wx/metar/clouds"
	"github.com/skybound-wx/metar/phenomena"
	"github.com/skybound-wx/metar/runway"
	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/visibility"
	"github.com/skybound-wx/metar/wind"
)

// ParseMETAR decodes a raw METAR bulletin into a Report. It never returns
// an error for merely unrecognized optional groups; errors are reserved
// for bulletins where a required production — the ICAO identifier chief
// among them — cannot be matched at its position in the input.
func ParseMETAR(input string) (*Report, error) {
	s := scan.New(input)
	s.Whitespace()
	parseReportName(s)
	s.Whitespace()

	preFlags := parseObservationFlags(s)
	s.Whitespace()

	identifier, ok := parseICAOIdentifier(s)
	if !ok {
		return nil, s.Error(LexicalMismatch)
	}
	s.Whitespace()

	var observationTime *ZuluDateTime
	if t, ok := parseObservationTime(s); ok {
		observationTime = t
	}
	s.Whitespace()

	var validityRange *ZuluTimeRange
	if r, ok := parseObservationValidityRange(s); ok {
		validityRange = r
	}
	s.Whitespace()

	// some stations incorrectly place the report name here
	parseReportName(s)
	s.Whitespace()

	flags := parseObservationFlags(s)
	s.Whitespace()

	report := &Report{
		Identifier:               identifier,
		ObservationTime:          observationTime,
		ObservationValidityRange: validityRange,
		ObservationFlags:         append(preFlags, flags...),
	}

	if w, ok := wind.Parse(s); ok {
		report.Wind = w
	}
	s.Whitespace()

	preTemperatures, _ := parseTemperatures(s)
	s.Whitespace()

	if v, ok := visibility.Parse(s); ok {
		report.Visibility = v
	}
	s.Whitespace()

	report.RunwayVisibilities = append(report.RunwayVisibilities, parseRunwayVisibilities(s)...)
	s.Whitespace()

	preRecentWeather := parseRecentWeatherSequence(s)
	s.Whitespace()

	report.Weather = parseWeatherSequence(s)
	s.Whitespace()

	report.CloudCover = append(report.CloudCover, parseCloudCovers(s)...)
	s.Whitespace()

	m := s.Mark()
	if s.Literal("CAVOK") {
		s.Whitespace()
		report.CAVOK = true
	} else {
		s.Reset(m)
	}

	temperatures, _ := parseTemperatures(s)
	s.Whitespace()

	pressure, _ := parsePressure(s)
	s.Whitespace()

	// some stations report the altimeter setting a second time in a
	// different unit, or a QFE field elevation pressure; discard it
	for {
		mm := s.Mark()
		if _, ok := parsePressure(s); !ok {
			s.Reset(mm)
			break
		}
		s.Whitespace()
	}

	weatherPostPressure := parseWeatherSequence(s)
	s.Whitespace()

	cloudCoverPostPressure := parseCloudCovers(s)
	s.Whitespace()

	temperaturesPostPressure, _ := parseTemperatures(s)
	s.Whitespace()

	report.AccumulatedRainfall, _ = parseAccumulatedRainfall(s)
	s.Whitespace()

	recentWeather := parseRecentWeatherSequence(s)
	s.Whitespace()

	cloudCoverPostRecentWeather := parseCloudCovers(s)
	s.Whitespace()

	temperaturesPostRecentWeather, _ := parseTemperatures(s)
	s.Whitespace()

	// military stations often report this
	report.Color, _ = parseColor(s)
	s.Whitespace()

	// some stations report runway visibility after the pressure group
	report.RunwayVisibilities = append(report.RunwayVisibilities, parseRunwayVisibilities(s)...)
	s.Whitespace()

	report.RunwayReports = parseRunwayReports(s)
	s.Whitespace()

	report.WaterConditions, _ = parseWaterConditions(s)
	s.Whitespace()

	report.Trends = parseTrends(s)
	s.Whitespace()

	report.Remark = parseRemark(s)

	m = s.Mark()
	if !s.Literal("$") {
		s.Reset(m)
	} else {
		report.MaintenanceNeeded = true
	}
	s.Whitespace()

	for s.Literal("/") {
	}
	s.Whitespace()

	m = s.Mark()
	if s.Literal("=") {
		s.Pos = len(s.Input)
	} else {
		s.Reset(m)
	}
	s.Whitespace()

	report.Pressure = pressure
	report.Temperatures = firstNonNilTemperatures(preTemperatures, temperatures, temperaturesPostPressure, temperaturesPostRecentWeather)
	report.Weather = append(report.Weather, weatherPostPressure...)
	report.CloudCover = append(report.CloudCover, cloudCoverPostPressure...)
	report.CloudCover = append(report.CloudCover, cloudCoverPostRecentWeather...)
	report.RecentWeather = append(preRecentWeather, recentWeather...)

	return report, nil
}

func firstNonNilTemperatures(candidates ...*Temperatures) *Temperatures {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

func parseReportName(s *scan.Scanner) (string, bool) {
	return s.OneOf("report name", "METAR", "SPECI")
}

// parseICAOIdentifier recognizes a letter followed by exactly three
// letters or digits.
func parseICAOIdentifier(s *scan.Scanner) (string, bool) {
	mark := s.Mark()
	if !s.Letter() {
		return "", false
	}
	for i := 0; i < 3; i++ {
		if !s.LetterOrDigit() {
			s.Reset(mark)
			return "", false
		}
	}
	return s.Input[mark:s.Pos], true
}

func parseObservationFlags(s *scan.Scanner) []ObservationFlag {
	var flags []ObservationFlag
	for {
		m := s.Mark()
		if len(flags) > 0 && !s.RequiredWhitespace() {
			s.Reset(m)
			break
		}
		val, ok := s.OneOf("observation flag", "AUTO", "NIL", "COR", "CCA", "CCB", "CCC", "RTD")
		if !ok {
			s.Reset(m)
			break
		}
		flags = append(flags, ObservationFlag(val))
	}
	return flags
}

func parseZuluTime(s *scan.Scanner) (ZuluTime, bool) {
	mark := s.Mark()
	hour, ok := s.DigitsExact(2)
	if !ok {
		return ZuluTime{}, false
	}
	minute, ok := s.DigitsExact(2)
	if !ok {
		s.Reset(mark)
		return ZuluTime{}, false
	}
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	return ZuluTime{Hour: h, Minute: m}, true
}

func parseObservationTime(s *scan.Scanner) (*ZuluDateTime, bool) {
	mark := s.Mark()
	day, ok := s.DigitsExact(2)
	if !ok {
		return nil, false
	}
	t, ok := parseZuluTime(s)
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	isZulu := s.Literal("Z")
	d, _ := strconv.Atoi(day)
	return &ZuluDateTime{DayOfMonth: d, Time: t, IsZulu: isZulu}, true
}

func parseObservationValidityRange(s *scan.Scanner) (*ZuluTimeRange, bool) {
	mark := s.Mark()
	begin, ok := parseZuluTime(s)
	if !ok || !s.Literal("/") {
		s.Reset(mark)
		return nil, false
	}
	end, ok := parseZuluTime(s)
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	return &ZuluTimeRange{Begin: begin, End: end}, true
}

func parseRunwayVisibilities(s *scan.Scanner) []runway.Visibility {
	var result []runway.Visibility
	for {
		m := s.Mark()
		if len(result) > 0 && !s.RequiredWhitespace() {
			s.Reset(m)
			break
		}
		v, ok := runway.ParseVisibility(s)
		if !ok {
			s.Reset(m)
			break
		}
		if v != nil {
			result = append(result, *v)
		}
	}
	return result
}

func parseRunwayReports(s *scan.Scanner) []runway.Report {
	var result []runway.Report
	for {
		m := s.Mark()
		if len(result) > 0 && !s.RequiredWhitespace() {
			s.Reset(m)
			break
		}
		r, ok := runway.ParseReport(s)
		if !ok {
			s.Reset(m)
			break
		}
		result = append(result, *r)
	}
	return result
}

func parseRecentWeatherSequence(s *scan.Scanner) []phenomena.Weather {
	var result []phenomena.Weather
	for {
		m := s.Mark()
		if len(result) > 0 && !s.RequiredWhitespace() {
			s.Reset(m)
			break
		}
		w, ok := phenomena.ParseRecent(s)
		if !ok {
			s.Reset(m)
			break
		}
		if w != nil {
			result = append(result, *w)
		}
	}
	return result
}

func parseCloudCovers(s *scan.Scanner) []clouds.Cover {
	var result []clouds.Cover
	for {
		m := s.Mark()
		if len(result) > 0 && !s.RequiredWhitespace() {
			s.Reset(m)
			break
		}
		c, ok := clouds.Parse(s)
		if !ok {
			s.Reset(m)
			break
		}
		if c != nil {
			result = append(result, *c)
		}
	}
	return result
}

func parseTrends(s *scan.Scanner) []Trend {
	var result []Trend
	for {
		m := s.Mark()
		if len(result) > 0 && !s.RequiredWhitespace() {
			s.Reset(m)
			break
		}
		t, ok := parseTrend(s)
		if !ok {
			s.Reset(m)
			break
		}
		result = append(result, *t)
	}
	return result
}

// parseRemark captures everything from a remark-section marker to the
// end of the bulletin, excluding the "$" maintenance marker.
func parseRemark(s *scan.Scanner) string {
	for _, marker := range []string{":RMK", "R MK", "RMK", "REMARK"} {
		if s.Literal(marker) {
			start := s.Pos
			for !s.EOF() && s.Input[s.Pos] != '$' {
				s.Pos++
			}
			return marker + s.Input[start:s.Pos]
		}
	}
	return ""
}
