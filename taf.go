package metar

import (
	"strconv"

	"github.com/skybound-wx/metar/clock"
	"github.com/skybound-wx/metar/scan"
)

// ParseTAF decodes a raw TAF bulletin using the package-level clock
// resolver. The forecast conditions are returned verbatim as raw text;
// see TAF.Conditions for why this parser does not decode them further.
func ParseTAF(input string) (*TAF, error) {
	return ParseTAFWithClock(input, clock.Resolve)
}

// ParseTAFWithClock decodes a raw TAF bulletin, resolving its day-only
// timestamps with the given clock.Resolver. Tests supply a fixed
// resolver so assertions don't depend on the wall clock.
func ParseTAFWithClock(input string, resolve clock.Resolver) (*TAF, error) {
	s := scan.New(input)
	s.Whitespace()

	// real-world bulletins commonly carry a leading "TAF" label the
	// source grammar's station/time/validity sequence doesn't itself
	// expect; tolerate it the same way METAR tolerates "METAR"/"SPECI".
	if s.Literal("TAF") {
		s.Whitespace()
	}

	identifier, ok := parseICAOIdentifier(s)
	if !ok {
		return nil, s.Error(LexicalMismatch)
	}
	s.Whitespace()

	issueDay, issueTime, ok := parseIssueTime(s)
	if !ok {
		return nil, s.Error(LexicalMismatch)
	}
	s.Whitespace()

	fromDay, fromHour, toDay, toHour, ok := parseValidTimes(s)
	if !ok {
		return nil, s.Error(LexicalMismatch)
	}
	s.Whitespace()

	conditions := s.Remaining()
	s.Pos = len(s.Input)

	return &TAF{
		Identifier: identifier,
		IssueTime:  resolve(issueDay, issueTime.Hour, issueTime.Minute),
		ValidFrom:  resolve(fromDay, fromHour, 0),
		ValidTo:    resolve(toDay, toHour, 0),
		Conditions: conditions,
	}, nil
}

// parseIssueTime recognizes the "ddhhmmZ" issue time group.
func parseIssueTime(s *scan.Scanner) (day int, t ZuluTime, ok bool) {
	mark := s.Mark()
	dayStr, ok := s.DigitsExact(2)
	if !ok {
		return 0, ZuluTime{}, false
	}
	zt, ok := parseZuluTime(s)
	if !ok {
		s.Reset(mark)
		return 0, ZuluTime{}, false
	}
	if !s.Literal("Z") {
		s.Reset(mark)
		return 0, ZuluTime{}, false
	}
	d, _ := strconv.Atoi(dayStr)
	return d, zt, true
}

// parseValidTimes recognizes the "ddhh/ddhh" validity period group.
func parseValidTimes(s *scan.Scanner) (fromDay, fromHour, toDay, toHour int, ok bool) {
	mark := s.Mark()
	fd, fh, ok := dayHour(s)
	if !ok || !s.Literal("/") {
		s.Reset(mark)
		return 0, 0, 0, 0, false
	}
	td, th, ok := dayHour(s)
	if !ok {
		s.Reset(mark)
		return 0, 0, 0, 0, false
	}
	return fd, fh, td, th, true
}

func dayHour(s *scan.Scanner) (day, hour int, ok bool) {
	mark := s.Mark()
	dayStr, ok := s.DigitsExact(2)
	if !ok {
		return 0, 0, false
	}
	hourStr, ok := s.DigitsExact(2)
	if !ok {
		s.Reset(mark)
		return 0, 0, false
	}
	d, _ := strconv.Atoi(dayStr)
	h, _ := strconv.Atoi(hourStr)
	return d, h, true
}
