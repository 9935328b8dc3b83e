package lexer

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseUnsigned(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
		rest  string
	}{
		// Hex
		{"0x1f5+", 501, "+"},
		{"0xefg", 239, "g"},
		{"0xFF", 255, ""},

		// Octal
		{"0123;", 83, ";"},
		{"0777", 511, ""},

		// Decimal
		{"78!", 78, "!"},
		{"0", 0, ""},
		{"0;", 0, ";"},
		{"0x", 0, "x"},
		{"08", 8, ""},
		{"18446744073709551615", 1<<64 - 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := ParseUnsigned(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestParseUnsignedNoMatch(t *testing.T) {
	for _, input := range []string{"", "abc", "+1", `"42"`} {
		t.Run(input, func(t *testing.T) {
			_, rest, err := ParseUnsigned(input)

			var scanErr *ScanError
			assert.True(t, errors.As(err, &scanErr), "expected a ScanError")
			assert.Equal(t, NoMatch, scanErr.Kind)
			assert.Equal(t, input, scanErr.At)
			assert.Equal(t, input, rest)
		})
	}
}

func TestParseUnsignedOverflow(t *testing.T) {
	tests := []struct {
		input string
		at    string
	}{
		// One past the 64-bit range in each base
		{"18446744073709551616", "18446744073709551616"},
		{"0x10000000000000000;", "10000000000000000;"},
		{"02000000000000000000000", "2000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, err := ParseUnsigned(tt.input)

			var scanErr *ScanError
			assert.True(t, errors.As(err, &scanErr), "expected a ScanError")
			assert.Equal(t, NumericOverflow, scanErr.Kind)
			assert.Equal(t, tt.at, scanErr.At)
		})
	}
}
