// Package clouds parses METAR/TAF cloud cover groups: amount, base
// height, and an optional convective cloud type.
package clouds

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// Coverage is the reported amount of sky cover.
type Coverage string

// predefined cloud amount codes
const (
	SKC Coverage = "SKC" // sky clear
	CLR Coverage = "CLR" // sky clear, automated station
	NCD Coverage = "NCD" // no cloud detected, automated station
	NSC Coverage = "NSC" // nil significant cloud
	FEW Coverage = "FEW"
	SCT Coverage = "SCT" // scattered
	BKN Coverage = "BKN" // broken
	OVC Coverage = "OVC" // overcast
	VV  Coverage = "VV"  // vertical visibility, sky obscured
)

// CloudType is a convective cloud type reported alongside a layer.
type CloudType string

const (
	Cumulonimbus    CloudType = "CB"
	ToweringCumulus CloudType = "TCU"
	Cumulus         CloudType = "CU"
	Cirrus          CloudType = "CI"
	Altocumulus     CloudType = "AC"
	Stratus         CloudType = "ST"
)

// Cover is a single cloud layer: its coverage, optional base height, and
// optional cloud type. Base is nil when the layer's height was reported
// as garbled ("///") or is not applicable (e.g. SKC).
type Cover struct {
	Coverage Coverage
	Base     *units.Length
	Type     *CloudType
}

// Parse recognizes a cloud cover group at the scanner's current
// position, in the grammar's five orderings:
//
//  1. a bare garbled layer ("/"+ cloud type) — returns (nil, true)
//  2. coverage + garbled base ("///") + optional type
//  3. coverage + 3-4 digit base + "//" + required whitespace-or-EOF (a
//     garbled type reported in place of a real one)
//  4. coverage + 3-4 digit base + optional type
//  5. coverage alone
func Parse(s *scan.Scanner) (*Cover, bool) {
	mark := s.Mark()

	if parseGarbledLayer(s) {
		return nil, true
	}
	s.Reset(mark)

	coverage, ok := parseCoverage(s)
	if !ok {
		return nil, false
	}

	// coverage + garbled base + optional type
	m := s.Mark()
	s.Whitespace()
	if s.Literal("///") {
		tm := s.Mark()
		s.Whitespace()
		typ, ok := parseCloudType(s)
		if !ok {
			s.Reset(tm)
		}
		return &Cover{Coverage: coverage, Type: typ}, true
	}
	s.Reset(m)

	// coverage + numeric base + "//" garbled type, anchored at a boundary
	m = s.Mark()
	s.Whitespace()
	if base, ok := baseHeight(s); ok {
		s.Whitespace()
		if s.Literal("//") && s.RequiredWhitespaceOrEOF() {
			b := heightFromHundredsOfFeet(base)
			return &Cover{Coverage: coverage, Base: &b}, true
		}
	}
	s.Reset(m)

	// coverage + numeric base + optional type
	m = s.Mark()
	s.Whitespace()
	if base, ok := baseHeight(s); ok {
		tm := s.Mark()
		s.Whitespace()
		typ, ok := parseCloudType(s)
		if !ok {
			s.Reset(tm)
		}
		b := heightFromHundredsOfFeet(base)
		return &Cover{Coverage: coverage, Base: &b, Type: typ}, true
	}
	s.Reset(m)

	// coverage alone
	return &Cover{Coverage: coverage}, true
}

func parseGarbledLayer(s *scan.Scanner) bool {
	mark := s.Mark()
	if !s.Literal("/") {
		return false
	}
	for s.Literal("/") {
	}
	if _, ok := parseCloudType(s); ok {
		return true
	}
	s.Reset(mark)
	return false
}

// parseCoverage recognizes the coverage keyword set, accepting the
// legacy shorthand "FW" and "SC" seen in older bulletins as synonyms for
// FEW and SCT respectively rather than introducing new coverage values.
func parseCoverage(s *scan.Scanner) (Coverage, bool) {
	val, ok := s.OneOf("cloud coverage", "SKC", "CLR", "NCD", "NSC", "FEW", "FW", "SCT", "SC", "BKN", "OVC", "VV")
	if !ok {
		return "", false
	}
	switch val {
	case "FW":
		return FEW, true
	case "SC":
		return SCT, true
	default:
		return Coverage(val), true
	}
}

func baseHeight(s *scan.Scanner) (string, bool) {
	return s.Digits(3, 4)
}

func parseCloudType(s *scan.Scanner) (*CloudType, bool) {
	val, ok := s.OneOf("cloud type", "CB", "TCU", "CU", "CI", "AC", "ST")
	if !ok {
		return nil, false
	}
	t := CloudType(val)
	return &t, true
}

// heightFromHundredsOfFeet converts a reported base height, given in
// hundreds of feet, into a unit-tagged Length.
func heightFromHundredsOfFeet(digits string) units.Length {
	hundreds, _ := strconv.Atoi(digits)
	return units.LengthFeet(float64(hundreds * 100))
}
