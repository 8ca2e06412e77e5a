// Package runway parses per-runway visual range (RVR) and runway
// condition report groups.
package runway

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// OutOfRange marks an RVR bound reported as below ("M") or above ("P")
// the instrument's measurable range.
type OutOfRange int

const (
	None OutOfRange = iota
	Less
	Greater
)

// Trend is the reported RVR tendency.
type Trend int

const (
	TrendNone Trend = iota
	Downward
	Upward
	NoDistinctTendency
)

// Reading is a single RVR reading, with its optional out-of-range bound.
type Reading struct {
	Distance   units.Length
	OutOfRange OutOfRange
}

// VisibilityKind distinguishes a fixed RVR reading from a varying range.
type VisibilityKind int

const (
	Fixed VisibilityKind = iota
	Varying
)

// Visibility is a runway visual range group ("R26L/0600FT" or
// "R26L/0600V1000FT/U").
type Visibility struct {
	Designator string
	Kind       VisibilityKind
	Reading    Reading // valid when Kind == Fixed
	Lower      Reading // valid when Kind == Varying
	Upper      Reading // valid when Kind == Varying
	Trend      Trend
}

// Report is a runway condition report group ("R26L/CLRD60").
type Report struct {
	Designator string
	Friction   *float64 // nil when reported as garbled ("//")
}

// ParseVisibility recognizes an RVR group. It returns (nil, true) for the
// documented absent-data form (a designator, or none at all, followed by
// a run of slashes).
func ParseVisibility(s *scan.Scanner) (*Visibility, bool) {
	mark := s.Mark()
	if !s.Literal("R") {
		return nil, false
	}

	if v, ok := parseRange(s); ok {
		return v, true
	}
	s.Reset(mark)
	s.Literal("R")

	if v, ok := parseFixed(s); ok {
		return v, true
	}
	s.Reset(mark)
	s.Literal("R")

	if parseAbsent(s) {
		return nil, true
	}
	s.Reset(mark)
	return nil, false
}

func parseRange(s *scan.Scanner) (*Visibility, bool) {
	mark := s.Mark()
	designator, ok := Designator(s)
	if !ok || !s.Literal("/") {
		s.Reset(mark)
		return nil, false
	}
	if isReportInfo(s) {
		s.Reset(mark)
		return nil, false
	}

	lowerOOR, _ := outOfRange(s)
	lowerVal, ok := s.OneOrMoreDigits()
	if !ok || !s.Literal("V") {
		s.Reset(mark)
		return nil, false
	}
	upperOOR, _ := outOfRange(s)
	upperVal, ok := s.OneOrMoreDigits()
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	unit := ""
	if s.Literal("FT") {
		unit = "FT"
	}

	lower := readingIn(unit, lowerVal, lowerOOR)
	upper := readingIn(unit, upperVal, upperOOR)

	trend, _ := parseTrend(s)
	s.Literal("/")

	return &Visibility{Designator: designator, Kind: Varying, Lower: lower, Upper: upper, Trend: trend}, true
}

func parseFixed(s *scan.Scanner) (*Visibility, bool) {
	mark := s.Mark()
	designator, ok := Designator(s)
	if !ok || !s.Literal("/") {
		s.Reset(mark)
		return nil, false
	}
	if isReportInfo(s) {
		s.Reset(mark)
		return nil, false
	}

	oor, _ := outOfRange(s)
	val, ok := s.OneOrMoreDigits()
	if !ok {
		s.Reset(mark)
		return nil, false
	}
	unit := ""
	if s.Literal("FT") {
		unit = "FT"
	}
	reading := readingIn(unit, val, oor)

	trend, _ := parseTrend(s)
	s.Literal("/")

	return &Visibility{Designator: designator, Kind: Fixed, Reading: reading, Trend: trend}, true
}

func parseAbsent(s *scan.Scanner) bool {
	mark := s.Mark()
	Designator(s) // optional; a missing designator has been observed here
	if !s.Literal("/////") {
		s.Reset(mark)
		return false
	}
	for s.Literal("/") {
	}
	if !s.RequiredWhitespaceOrEOF() {
		s.Reset(mark)
		return false
	}
	return true
}

// ParseReport recognizes a runway condition report group ("R26L/CLRD60"
// or "R26L/CLRD//" when friction is garbled).
func ParseReport(s *scan.Scanner) (*Report, bool) {
	mark := s.Mark()
	if !s.Literal("R") {
		return nil, false
	}
	designator, ok := Designator(s)
	if !ok || !s.Literal("/") {
		s.Reset(mark)
		return nil, false
	}
	if !s.Literal("CLRD") {
		s.Reset(mark)
		return nil, false
	}
	if s.Literal("//") {
		return &Report{Designator: designator}, true
	}
	if digits, ok := s.OneOrMoreDigits(); ok {
		value, _ := strconv.ParseFloat(digits, 64)
		return &Report{Designator: designator, Friction: &value}, true
	}
	s.Reset(mark)
	return nil, false
}

// Designator recognizes a runway designator: one-or-more digits with an
// optional L/C/R/D suffix.
func Designator(s *scan.Scanner) (string, bool) {
	mark := s.Mark()
	digits, ok := s.OneOrMoreDigits()
	if !ok {
		return "", s.FailAt(mark, "runway designator")
	}
	for _, letter := range []string{"L", "C", "R", "D"} {
		if s.Literal(letter) {
			return digits + letter, true
		}
	}
	return digits, true
}

// isReportInfo peeks ahead for "CLRD", used as a negative lookahead so
// runway_visibility never swallows a condition report.
func isReportInfo(s *scan.Scanner) bool {
	mark := s.Mark()
	defer s.Reset(mark)
	return s.Literal("CLRD")
}

func outOfRange(s *scan.Scanner) (OutOfRange, bool) {
	mark := s.Mark()
	if s.Literal("M") {
		return Less, true
	}
	if s.Literal("P") {
		return Greater, true
	}
	s.Reset(mark)
	return None, false
}

func parseTrend(s *scan.Scanner) (Trend, bool) {
	mark := s.Mark()
	s.Literal("/")
	val, ok := s.OneOf("visibility trend", "D", "N", "U")
	if !ok {
		s.Reset(mark)
		return TrendNone, false
	}
	switch val {
	case "D":
		return Downward, true
	case "U":
		return Upward, true
	default:
		return NoDistinctTendency, true
	}
}

func readingIn(unit, digits string, oor OutOfRange) Reading {
	value, _ := strconv.ParseFloat(digits, 64)
	if unit == "FT" {
		return Reading{Distance: units.LengthFeet(value), OutOfRange: oor}
	}
	return Reading{Distance: units.LengthMeters(value), OutOfRange: oor}
}
