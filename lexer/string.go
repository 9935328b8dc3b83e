package lexer

import (
	"strings"
	"unicode/utf8"
)

// DecodedString is the result of scanning a quoted string literal. When
// the literal contains no escapes, Text is a view into the scanned input
// and no allocation has happened; the first escape switches the result
// to an owned buffer.
type DecodedString struct {
	Text  string
	Owned bool
}

// ParseString scans a double-quoted string literal with backslash
// escapes and returns its decoded content.
//
// The body is read in two phases so the escape-free common case stays
// zero-copy: first the maximal run of bytes that are neither '"' nor
// '\\' becomes a borrowed prefix, then each escape switches to an owned
// buffer that the decoded characters and following literal runs are
// appended to. Escape forms after the backslash:
//   - 'x' followed by exactly two hex digits: the byte value as a character
//   - exactly three octal digits with a value up to 0xff: likewise
//   - otherwise the next character verbatim (unrecognized escapes are
//     passed through rather than rejected)
//
// If the input ends before the closing quote the scanner reports an
// IncompleteError instead of a structural failure, so callers can feed
// input incrementally.
func ParseString(input string) (DecodedString, string, error) {
	if len(input) == 0 || input[0] != '"' {
		return DecodedString{}, input, scanError(NoMatch, input)
	}

	rest := input[1:]
	prefix := rest[:literalRun(rest)]
	rest = rest[len(prefix):]

	if len(rest) == 0 {
		return DecodedString{}, input, &IncompleteError{Needed: 1}
	}
	if rest[0] == '"' {
		// Escape-free fast path: borrow the body from the input.
		return DecodedString{Text: prefix}, rest[1:], nil
	}

	var buf strings.Builder
	buf.Grow(len(rest))
	buf.WriteString(prefix)

	for {
		// rest[0] == '\\'
		rest = rest[1:]
		if len(rest) == 0 {
			return DecodedString{}, input, &IncompleteError{Needed: 1}
		}
		rest = decodeEscape(&buf, rest)

		run := rest[:literalRun(rest)]
		buf.WriteString(run)
		rest = rest[len(run):]

		if len(rest) == 0 {
			return DecodedString{}, input, &IncompleteError{Needed: 1}
		}
		if rest[0] == '"' {
			return DecodedString{Text: buf.String(), Owned: true}, rest[1:], nil
		}
	}
}

// literalRun returns the length of the maximal run of bytes that are
// neither '"' nor '\\'.
func literalRun(input string) int {
	if i := strings.IndexAny(input, "\"\\"); i >= 0 {
		return i
	}
	return len(input)
}

// decodeEscape decodes one escape body (the backslash is already
// consumed) into buf and returns the remaining input. Byte values from
// hex and octal escapes are reinterpreted as characters, matching how
// the encoder produced them.
func decodeEscape(buf *strings.Builder, rest string) string {
	if rest[0] == 'x' && len(rest) >= 3 && isHexDigit(rest[1]) && isHexDigit(rest[2]) {
		buf.WriteRune(rune(hexDigitValue(rest[1])<<4 | hexDigitValue(rest[2])))
		return rest[3:]
	}

	if b, ok := octByteValue(rest); ok {
		buf.WriteRune(rune(b))
		return rest[3:]
	}

	// Permissive fallback: take the next character verbatim.
	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError && size == 1 {
		buf.WriteByte(rest[0])
	} else {
		buf.WriteRune(r)
	}
	return rest[size:]
}
