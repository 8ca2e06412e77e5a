package metar

import "github.com/skybound-wx/metar/scan"

// ErrorKind classifies why decoding a bulletin failed. It mirrors
// scan.ErrorKind so callers don't need to import the scan package just
// to inspect an error.
type ErrorKind = scan.ErrorKind

const (
	LexicalMismatch            = scan.LexicalMismatch
	StructuralMismatch         = scan.StructuralMismatch
	InternalInvariantViolation = scan.InternalInvariantViolation
)

// ParseError reports where in the bulletin decoding gave up, and what
// the grammar expected to find there.
type ParseError = scan.ParseError
