// Package visibility parses the METAR prevailing and directional
// visibility groups, in all seven orderings the grammar admits.
package visibility

import (
	"strconv"

	"github.com/skybound-wx/metar/scan"
	"github.com/skybound-wx/metar/units"
)

// CompassDirection is an 8-point compass bearing.
type CompassDirection int

const (
	N CompassDirection = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// OutOfRange marks a visibility value reported as a bound rather than an
// exact reading ("M1/4SM" means less than, "P6SM" means greater than).
type OutOfRange int

const (
	// None means the value was reported exactly.
	None OutOfRange = iota
	Less
	Greater
)

// RawVisibility is a single visibility reading, with its optional bound.
type RawVisibility struct {
	Distance   units.Length
	OutOfRange OutOfRange
}

// Directional pairs a visibility reading with the compass direction it was
// reported in.
type Directional struct {
	Distance  RawVisibility
	Direction CompassDirection
}

// Visibility is the full visibility group: an optional prevailing
// reading, and up to two directional readings (e.g. "minimum" and
// "maximum" sectors).
type Visibility struct {
	Prevailing         *RawVisibility
	MinimumDirectional *Directional
	MaximumDirectional *Directional
}

// Parse recognizes a visibility group. It returns (nil, true) for the
// documented no-data forms (NDV with or without a leading digit run, and
// the "////" slash-run sentinel with or without a unit or NDV suffix);
// (nil, false) if no visibility group is present at all.
func Parse(s *scan.Scanner) (*Visibility, bool) {
	mark := s.Mark()
	if parseNoDataForm(s) {
		return nil, true
	}
	s.Reset(mark)

	if v, ok := parseFull(s); ok {
		return v, true
	}
	s.Reset(mark)
	return nil, false
}

func parseNoDataForm(s *scan.Scanner) bool {
	mark := s.Mark()

	// leading digit run (optional) then NDV then an optional unit
	for s.Digit() {
	}
	if s.Literal("NDV") {
		visibilityUnit(s)
		return true
	}
	s.Reset(mark)

	if s.Literal("////") {
		um := s.Mark()
		if _, ok := visibilityUnit(s); ok {
			return true
		}
		s.Reset(um)
		if s.Literal("NDV") {
			visibilityUnit(s)
			return true
		}
		s.Reset(mark)
		return false
	}
	return false
}

// parseFull tries the grammar's five orderings in the original's exact
// precedence, each attempted fresh from the starting position so an
// earlier alternative's partial match never forecloses a later one.
func parseFull(s *scan.Scanner) (*Visibility, bool) {
	mark := s.Mark()

	// prevailing + minimum + maximum
	if prevailing, ok := rawVisibility(s); ok {
		if s.RequiredWhitespace() {
			if minDir, ok := directional(s); ok {
				if s.RequiredWhitespace() {
					if maxDir, ok := directional(s); ok {
						return &Visibility{Prevailing: &prevailing, MinimumDirectional: &minDir, MaximumDirectional: &maxDir}, true
					}
				}
			}
		}
	}
	s.Reset(mark)

	// prevailing + minimum
	if prevailing, ok := rawVisibility(s); ok {
		if s.RequiredWhitespace() {
			if minDir, ok := directional(s); ok {
				return &Visibility{Prevailing: &prevailing, MinimumDirectional: &minDir}, true
			}
		}
	}
	s.Reset(mark)

	// minimum + maximum
	if minDir, ok := directional(s); ok {
		if s.RequiredWhitespace() {
			if maxDir, ok := directional(s); ok {
				return &Visibility{MinimumDirectional: &minDir, MaximumDirectional: &maxDir}, true
			}
		}
	}
	s.Reset(mark)

	// minimum alone
	if minDir, ok := directional(s); ok {
		return &Visibility{MinimumDirectional: &minDir}, true
	}
	s.Reset(mark)

	// prevailing alone
	if prevailing, ok := rawVisibility(s); ok {
		return &Visibility{Prevailing: &prevailing}, true
	}
	s.Reset(mark)

	return nil, false
}

func directional(s *scan.Scanner) (Directional, bool) {
	mark := s.Mark()
	distance, ok := rawVisibility(s)
	if !ok {
		return Directional{}, false
	}
	dir, ok := compassDirection(s)
	if !ok {
		s.Reset(mark)
		return Directional{}, false
	}
	return Directional{Distance: distance, Direction: dir}, true
}

// rawVisibility recognizes, in order: whole-number-plus-fraction
// ("1 1/2SM"), fraction-only ("1/2SM"), and integer-only ("1600"), each
// with an optional leading out-of-range bound and an optional trailing
// unit (defaulting to meters when absent). Each alternative is attempted
// fresh from the same starting mark — the whole-number alternative
// consuming a leading digit run must not foreclose the fraction-only
// alternative, since "1/2SM" has no whole part for that run to claim.
func rawVisibility(s *scan.Scanner) (RawVisibility, bool) {
	mark := s.Mark()

	// whole number plus fraction
	oor, _ := outOfRange(s)
	if whole, ok := s.OneOrMoreDigits(); ok {
		s.Whitespace()
		if num, ok := s.OneOrMoreDigits(); ok {
			if s.Literal("/") {
				if den, ok := s.OneOrMoreDigits(); ok {
					unit, _ := visibilityUnit(s)
					value := parseWholeFraction(whole, num, den)
					return RawVisibility{Distance: lengthIn(unit, value), OutOfRange: oor}, true
				}
			}
		}
	}
	s.Reset(mark)

	// fraction only
	oor, _ = outOfRange(s)
	if num, ok := s.OneOrMoreDigits(); ok {
		if s.Literal("/") {
			if den, ok := s.OneOrMoreDigits(); ok {
				unit, _ := visibilityUnit(s)
				n, _ := strconv.ParseFloat(num, 64)
				d, _ := strconv.ParseFloat(den, 64)
				return RawVisibility{Distance: lengthIn(unit, n/d), OutOfRange: oor}, true
			}
		}
	}
	s.Reset(mark)

	// integer only
	oor, _ = outOfRange(s)
	if whole, ok := s.OneOrMoreDigits(); ok {
		unit, _ := visibilityUnit(s)
		value, _ := strconv.ParseFloat(whole, 64)
		return RawVisibility{Distance: lengthIn(unit, value), OutOfRange: oor}, true
	}
	s.Reset(mark)

	return RawVisibility{}, false
}

func parseWholeFraction(whole, num, den string) float64 {
	w, _ := strconv.ParseFloat(whole, 64)
	n, _ := strconv.ParseFloat(num, 64)
	d, _ := strconv.ParseFloat(den, 64)
	return w + n/d
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

// visibilityUnit recognizes an optional "M"/"KM"/"SM" unit tag, anchored
// by a required-whitespace-or-EOF lookahead so a unit never swallows the
// start of the next group (e.g. "5SMOKE" must not read as "5SM").
func visibilityUnit(s *scan.Scanner) (string, bool) {
	mark := s.Mark()
	s.Whitespace()
	val, ok := s.OneOf("visibility unit", "KM", "SM", "M")
	if !ok {
		s.Reset(mark)
		return "", false
	}
	if !s.RequiredWhitespaceOrEOF() {
		s.Reset(mark)
		return "", false
	}
	return val, true
}

func lengthIn(unit string, value float64) units.Length {
	switch unit {
	case "KM":
		return units.LengthKilometers(value)
	case "SM":
		return units.LengthStatuteMiles(value)
	default:
		return units.LengthMeters(value)
	}
}

func compassDirection(s *scan.Scanner) (CompassDirection, bool) {
	val, ok := s.OneOf("8-point compass direction", "NE", "NW", "N", "SE", "SW", "S", "E", "W")
	if !ok {
		return 0, false
	}
	switch val {
	case "N":
		return N, true
	case "NE":
		return NE, true
	case "E":
		return E, true
	case "SE":
		return SE, true
	case "S":
		return S, true
	case "SW":
		return SW, true
	case "W":
		return W, true
	case "NW":
		return NW, true
	}
	return 0, false
}
