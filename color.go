package metar

import "github.com/skybound-wx/metar/scan"

// parseColor recognizes a military color-code group: an optional
// "BLACK" runway-state prefix, the current color state, and optionally
// the color it is trending toward. Both forms are anchored by a
// required-whitespace-or-EOF lookahead so the color keyword set (which
// overlaps with no other group's vocabulary) never partially matches the
// start of an adjacent token.
func parseColor(s *scan.Scanner) (*Color, bool) {
	mark := s.Mark()
	isBlack := s.Literal("BLACK")
	s.Whitespace()

	current, ok := colorState(s)
	if !ok {
		s.Reset(mark)
		return nil, false
	}

	m := s.Mark()
	s.Whitespace()
	if next, ok := colorState(s); ok && s.RequiredWhitespaceOrEOF() {
		return &Color{IsBlack: isBlack, CurrentColor: current, NextColor: &next}, true
	}
	s.Reset(m)

	if !s.RequiredWhitespaceOrEOF() {
		s.Reset(mark)
		return nil, false
	}
	return &Color{IsBlack: isBlack, CurrentColor: current}, true
}

func colorState(s *scan.Scanner) (ColorState, bool) {
	val, ok := s.OneOf("color state", "BLU+", "BLU", "WHT", "GRN", "YLO1", "YLO2", "YLO", "AMB", "RED")
	return ColorState(val), ok
}
