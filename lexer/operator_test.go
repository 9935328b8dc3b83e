package lexer

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input string
		want  Operator
		rest  string
	}{
		{"==a", Equal, "a"},
		{"!=b", NotEqual, "b"},
		// Two-character tags win over their one-character prefixes
		{">=2", GreaterThanEqual, "2"},
		{"<=2", LessThanEqual, "2"},
		{">2", GreaterThan, "2"},
		{"<2", LessThan, "2"},
		{"~1", Matches, "1"},
		{"&1", BitwiseAnd, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := ParseOperator(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestParseOperatorNoMatch(t *testing.T) {
	for _, input := range []string{"", "xyz", "=x", "1"} {
		t.Run(input, func(t *testing.T) {
			_, rest, err := ParseOperator(input)

			var scanErr *ScanError
			assert.True(t, errors.As(err, &scanErr), "expected a ScanError")
			assert.Equal(t, NoMatch, scanErr.Kind)
			assert.Equal(t, input, scanErr.At)
			assert.Equal(t, input, rest)
		})
	}
}

func TestParseIdentifierLikeKeywords(t *testing.T) {
	tests := map[string]Operator{
		"eq":          Equal,
		"ne":          NotEqual,
		"gt":          GreaterThan,
		"lt":          LessThan,
		"ge":          GreaterThanEqual,
		"le":          LessThanEqual,
		"contains":    Contains,
		"matches":     Matches,
		"bitwise_and": BitwiseAnd,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			got, rest, err := ParseIdentifierLike(input)

			assert.NoError(t, err)
			assert.True(t, got.IsOp, "expected an operator")
			assert.Equal(t, want, got.Op)
			assert.Equal(t, "", rest)
		})
	}
}

func TestParseIdentifierLike(t *testing.T) {
	tests := []struct {
		input string
		name  string
		rest  string
	}{
		{"xyz1", "xyz", "1"},
		// A word merely starting with a keyword is not split
		{"containst", "containst", ""},
		{"host port", "host", " port"},
		{"tcp;", "tcp", ";"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := ParseIdentifierLike(tt.input)

			assert.NoError(t, err)
			assert.False(t, got.IsOp, "expected an identifier")
			assert.Equal(t, tt.name, got.Name)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestParseIdentifierLikeWholeWord(t *testing.T) {
	// Classification happens against the whole word only: "contains"
	// followed by a word boundary is the operator, with no boundary it
	// stays an identifier.
	got, rest, err := ParseIdentifierLike("contains t")
	assert.NoError(t, err)
	assert.True(t, got.IsOp)
	assert.Equal(t, Contains, got.Op)
	assert.Equal(t, " t", rest)
}

func TestParseIdentifierLikeNoMatch(t *testing.T) {
	for _, input := range []string{"", "123", "_x", " tcp"} {
		t.Run(input, func(t *testing.T) {
			_, rest, err := ParseIdentifierLike(input)

			var scanErr *ScanError
			assert.True(t, errors.As(err, &scanErr), "expected a ScanError")
			assert.Equal(t, NoMatch, scanErr.Kind)
			assert.Equal(t, input, scanErr.At)
			assert.Equal(t, input, rest)
		})
	}
}
