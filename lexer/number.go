package lexer

import (
	"errors"
	"strconv"
	"strings"
)

// ParseUnsigned scans an unsigned integer literal from the start of input
// and returns its value together with the unconsumed remainder.
//
// Alternatives are tried in this order, first match wins:
//   - hex: "0x" followed by one or more hex digits, parsed base 16
//   - octal: "0" followed by one or more octal digits, parsed base 8
//   - decimal: one or more decimal digits, parsed base 10
//
// Hex must be tried before octal so "0x..." is never misread as octal. A
// bare "0" with no following octal digit falls through to the decimal
// path and is consumed as the value 0. Digit runs are greedy.
func ParseUnsigned(input string) (uint64, string, error) {
	if strings.HasPrefix(input, "0x") {
		if run := hexRun(input[2:]); run > 0 {
			v, err := parseDigits(input[2:2+run], 16, input[2:])
			if err != nil {
				return 0, input, err
			}
			return v, input[2+run:], nil
		}
	}

	if len(input) > 0 && input[0] == '0' {
		if run := octRun(input[1:]); run > 0 {
			v, err := parseDigits(input[1:1+run], 8, input[1:])
			if err != nil {
				return 0, input, err
			}
			return v, input[1+run:], nil
		}
	}

	run := decRun(input)
	if run == 0 {
		return 0, input, scanError(NoMatch, input)
	}
	v, err := parseDigits(input[:run], 10, input)
	if err != nil {
		return 0, input, err
	}
	return v, input[run:], nil
}

// parseDigits converts a digit run in the given base, reporting overflow
// at the suffix where the run begins. A committed prefix is never
// reinterpreted: once a hex or octal digit run is found, its overflow is
// final rather than falling through to another base.
func parseDigits(digits string, base int, at string) (uint64, error) {
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, scanError(NumericOverflow, at)
		}
		return 0, &ScanError{Kind: NoMatch, At: at, Inner: err}
	}
	return v, nil
}
