package lexer

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a structural scan failure.
type ErrorKind uint8

const (
	// NoMatch means the input does not start with the requested token.
	NoMatch ErrorKind = iota

	// NumericOverflow means a numeric literal was syntactically valid but
	// its value does not fit the target range.
	NumericOverflow
)

var errorKindNames = map[ErrorKind]string{
	NoMatch:         "no match",
	NumericOverflow: "numeric overflow",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ScanError is a structural scan failure. At is the exact suffix of the
// input at which the failure occurred, so callers can compute the byte
// offset of the failure against the buffer they handed in.
type ScanError struct {
	Kind  ErrorKind
	At    string
	Inner error
}

func (e *ScanError) Error() string {
	at := e.At
	if len(at) > 16 {
		at = at[:16] + "..."
	}
	return fmt.Sprintf("%s at %q", e.Kind, at)
}

func (e *ScanError) Unwrap() error {
	return e.Inner
}

// scanError builds a ScanError positioned at the given suffix.
func scanError(kind ErrorKind, at string) error {
	return &ScanError{Kind: kind, At: at}
}

// IncompleteError signals that the input is a valid but truncated prefix
// of a token. It is not a structural failure: the caller should supply
// more input and retry. Only the string scanner produces it.
type IncompleteError struct {
	// Needed is the minimum number of additional bytes required, or 0
	// when the amount cannot be computed.
	Needed int
}

func (e *IncompleteError) Error() string {
	if e.Needed > 0 {
		return fmt.Sprintf("incomplete token: need at least %d more byte(s)", e.Needed)
	}
	return "incomplete token"
}

// IsIncomplete reports whether err signals truncated rather than invalid
// input.
func IsIncomplete(err error) bool {
	_, ok := err.(*IncompleteError)
	return ok
}

// Position locates a scan failure within a source buffer.
type Position struct {
	Offset int // Byte offset into the source
	Line   int // Line number (1-indexed)
	Column int // Column number (1-indexed)
}

// PositionOf resolves the position of a failure suffix within the source
// it was scanned from. The suffix must be the At field of a ScanError
// produced while scanning (a tail of) source; if it is not a tail of
// source, the end-of-input position is returned.
func PositionOf(source, at string) Position {
	offset := len(source) - len(at)
	if offset < 0 || !strings.HasSuffix(source, at) {
		offset = len(source)
	}

	pos := Position{Offset: offset, Line: 1, Column: 1}
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
