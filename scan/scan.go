// Package scan provides the PEG-style scanning primitives the METAR and
// TAF grammars are built from: a byte-position cursor with save/restore
// marks for backtracking, a furthest-failure tracker for error reporting,
// and the tolerant whitespace grammar that resynchronizes the parser
// across garbage delimiters in real-world bulletins.
//
// A rule is any func(*Scanner) (T, bool): it consumes from the scanner on
// success, and must restore the scanner's position on failure. Scanner
// itself only ever advances Pos on a successful match; callers are
// responsible for calling Mark/Reset around an alternative they might
// abandon.
package scan

import (
	"sort"
	"strings"
)

// Scanner is the parser's cursor over the input buffer.
type Scanner struct {
	Input    string
	Pos      int
	furthest int
	expected map[string]struct{}
}

// New creates a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{Input: input}
}

// EOF reports whether the cursor is at the end of the input.
func (s *Scanner) EOF() bool { return s.Pos >= len(s.Input) }

// Remaining returns the unconsumed suffix of the input.
func (s *Scanner) Remaining() string { return s.Input[s.Pos:] }

// Mark saves the current position for a later Reset.
func (s *Scanner) Mark() int { return s.Pos }

// Reset restores the cursor to a previously-marked position. Used when an
// ordered alternative fails and the next alternative must retry from the
// same starting point.
func (s *Scanner) Reset(pos int) { s.Pos = pos }

// Fail records an expectation at the current position for furthest-failure
// tracking and always returns false, so call sites can write
// `return s.Fail("digit")`.
func (s *Scanner) Fail(label string) bool {
	s.recordFailure(s.Pos, label)
	return false
}

// FailAt is like Fail but records the failure at an explicit position,
// used when a rule wants to report the position it started at rather than
// wherever a nested sub-rule finally gave up.
func (s *Scanner) FailAt(pos int, label string) bool {
	s.recordFailure(pos, label)
	return false
}

func (s *Scanner) recordFailure(pos int, label string) {
	switch {
	case pos > s.furthest:
		s.furthest = pos
		s.expected = map[string]struct{}{label: {}}
	case pos == s.furthest:
		if s.expected == nil {
			s.expected = map[string]struct{}{}
		}
		s.expected[label] = struct{}{}
	}
}

// Literal consumes an exact, case-sensitive literal if present.
func (s *Scanner) Literal(lit string) bool {
	if strings.HasPrefix(s.Remaining(), lit) {
		s.Pos += len(lit)
		return true
	}
	return false
}

// OneOf tries each literal alternative in order (PEG ordered choice) and
// consumes the first one that matches, returning it. Order matters: list
// longer alternatives that share a prefix with a shorter one first (e.g.
// "KTS" before "KT"), exactly as the grammar's comments require.
func (s *Scanner) OneOf(label string, alternatives ...string) (string, bool) {
	for _, alt := range alternatives {
		if s.Literal(alt) {
			return alt, true
		}
	}
	return "", s.Fail(label)
}

// Digit consumes exactly one ASCII digit.
func (s *Scanner) Digit() bool {
	if s.EOF() {
		return s.Fail("digit")
	}
	c := s.Input[s.Pos]
	if c < '0' || c > '9' {
		return s.Fail("digit")
	}
	s.Pos++
	return true
}

// Letter consumes exactly one uppercase ASCII letter.
func (s *Scanner) Letter() bool {
	if s.EOF() {
		return s.Fail("letter")
	}
	c := s.Input[s.Pos]
	if c < 'A' || c > 'Z' {
		return s.Fail("letter")
	}
	s.Pos++
	return true
}

// LetterOrDigit consumes one letter-or-digit character.
func (s *Scanner) LetterOrDigit() bool {
	mark := s.Mark()
	if s.Letter() {
		return true
	}
	s.Reset(mark)
	if s.Digit() {
		return true
	}
	s.Reset(mark)
	return s.Fail("letter or digit")
}

// Digits consumes between min and max digits (max < 0 means unbounded),
// greedily, and returns the consumed run. Fails (restoring position) if
// fewer than min digits are available.
func (s *Scanner) Digits(min, max int) (string, bool) {
	mark := s.Mark()
	count := 0
	for (max < 0 || count < max) && !s.EOF() {
		c := s.Input[s.Pos]
		if c < '0' || c > '9' {
			break
		}
		s.Pos++
		count++
	}
	if count < min {
		s.Reset(mark)
		return "", s.Fail("digit")
	}
	return s.Input[mark:s.Pos], true
}

// DigitsExact consumes exactly n digits.
func (s *Scanner) DigitsExact(n int) (string, bool) { return s.Digits(n, n) }

// OneOrMoreDigits consumes a run of one or more digits.
func (s *Scanner) OneOrMoreDigits() (string, bool) { return s.Digits(1, -1) }

// Whitespace is the grammar's `whitespace()` rule: required whitespace,
// made optional. It always succeeds, consuming as much tolerant
// whitespace as is present (possibly none).
func (s *Scanner) Whitespace() { s.RequiredWhitespace() }

// RequiredWhitespace consumes one or more of: a plain space; CR+LF, LF, or
// tab; a stray '>'; or either of two garbage patterns real bulletins
// produce — a space followed by one-or-more slash-runs each followed by a
// space, and a space followed by one-or-more "M " repetitions. It is the
// parser's central resynchronization device: it fails only when none of
// these are present at all.
func (s *Scanner) RequiredWhitespace() bool {
	start := s.Pos
	matchedAny := false
	for {
		before := s.Pos
		switch {
		case s.matchSlashGarbage():
		case s.matchMGarbage():
		case s.Literal(" "):
		case s.Literal("\r\n"):
		case s.Literal("\n"):
		case s.Literal("\t"):
		case s.Literal(">"):
		default:
			goto done
		}
		if s.Pos == before {
			goto done
		}
		matchedAny = true
	}
done:
	if !matchedAny {
		s.Reset(start)
		return s.Fail("whitespace")
	}
	return true
}

// matchSlashGarbage matches " " ("/"+ " ")+.
func (s *Scanner) matchSlashGarbage() bool {
	mark := s.Mark()
	if !s.Literal(" ") {
		return false
	}
	groups := 0
	for {
		groupStart := s.Mark()
		if !s.Literal("/") {
			s.Reset(groupStart)
			break
		}
		for s.Literal("/") {
		}
		if !s.Literal(" ") {
			s.Reset(groupStart)
			break
		}
		groups++
	}
	if groups == 0 {
		s.Reset(mark)
		return false
	}
	return true
}

// matchMGarbage matches " " ("M" " ")+.
func (s *Scanner) matchMGarbage() bool {
	mark := s.Mark()
	if !s.Literal(" ") {
		return false
	}
	groups := 0
	for {
		groupStart := s.Mark()
		if !s.Literal("M") || !s.Literal(" ") {
			s.Reset(groupStart)
			break
		}
		groups++
	}
	if groups == 0 {
		s.Reset(mark)
		return false
	}
	return true
}

// RequiredWhitespaceOrEOF reports (without consuming) whether required
// whitespace or end-of-input follows immediately. Used as a positive
// lookahead to anchor greedy numeric/unit alternatives at a token
// boundary, so e.g. "5SMOKE" doesn't match "5SM" as a visibility group.
func (s *Scanner) RequiredWhitespaceOrEOF() bool {
	mark := s.Mark()
	defer s.Reset(mark)
	if s.EOF() {
		return true
	}
	return s.RequiredWhitespace()
}

// Error builds the furthest-failure ParseError for this scanner, or nil if
// no rule has failed.
func (s *Scanner) Error(kind ErrorKind) *ParseError {
	if s.expected == nil {
		return nil
	}
	expected := make([]string, 0, len(s.expected))
	for label := range s.expected {
		expected = append(expected, label)
	}
	sort.Strings(expected)
	return &ParseError{
		Kind:     kind,
		Offset:   s.furthest,
		Expected: expected,
	}
}
