package lexer

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseEthernet(t *testing.T) {
	tests := []struct {
		input string
		want  [6]byte
		rest  string
	}{
		{"12:34:56:78:90:abc", [6]byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab}, "c"},
		{"12.34.56.78.90.abc", [6]byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab}, "c"},
		// Separator styles may be mixed, and the separator inside a
		// pair is optional
		{"12.34:56.78-90abc", [6]byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab}, "c"},
		{"1234-5678-90ab", [6]byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab}, ""},
		{"de:ad:be:ef:ca:fe ", [6]byte{0xde, 0xad, 0xbe, 0xef, 0xca, 0xfe}, " "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := ParseEthernet(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestParseEthernetErrors(t *testing.T) {
	tests := []struct {
		input string
		at    string
	}{
		// A bad hex digit fails at the byte pair that contains it
		{"12:34:56:7g:90:ab", "7g:90:ab"},
		// A third digit where a separator was required fails at the
		// stray digit
		{"12:34f:56:78:90:ab", "f:56:78:90:ab"},
		{"12:34", ""},
		{"zz:34:56:78:90:ab", "zz:34:56:78:90:ab"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, rest, err := ParseEthernet(tt.input)

			var scanErr *ScanError
			assert.True(t, errors.As(err, &scanErr), "expected a ScanError")
			assert.Equal(t, NoMatch, scanErr.Kind)
			assert.Equal(t, tt.at, scanErr.At)
			assert.Equal(t, tt.input, rest)
		})
	}
}

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		input string
		want  [4]byte
		rest  string
	}{
		{"12.34.56.78;", [4]byte{12, 34, 56, 78}, ";"},
		{"0.0.0.0", [4]byte{0, 0, 0, 0}, ""},
		{"255.255.255.255 >", [4]byte{255, 255, 255, 255}, " >"},
		{"192.168.0.1", [4]byte{192, 168, 0, 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := ParseIPv4(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestParseIPv4Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
		at    string
	}{
		// An out-of-range byte literal fails at that literal, it is
		// never truncated or wrapped
		{"12.34.56.789", NumericOverflow, "789"},
		{"256.1.1.1", NumericOverflow, "256.1.1.1"},
		{"12.34.56", NoMatch, ""},
		{"12.34.56.", NoMatch, ""},
		{"12,34.56.78", NoMatch, ",34.56.78"},
		{"x.1.1.1", NoMatch, "x.1.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, rest, err := ParseIPv4(tt.input)

			var scanErr *ScanError
			assert.True(t, errors.As(err, &scanErr), "expected a ScanError")
			assert.Equal(t, tt.kind, scanErr.Kind)
			assert.Equal(t, tt.at, scanErr.At)
			assert.Equal(t, tt.input, rest)
		})
	}
}
