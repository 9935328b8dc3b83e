package lexer

import "strings"

// Operator is a comparison or bitwise operator of the filter language.
type Operator uint8

const (
	Equal Operator = iota
	NotEqual
	GreaterThan
	LessThan
	GreaterThanEqual
	LessThanEqual
	Contains
	Matches
	BitwiseAnd
)

var operatorNames = map[Operator]string{
	Equal:            "eq",
	NotEqual:         "ne",
	GreaterThan:      "gt",
	LessThan:         "lt",
	GreaterThanEqual: "ge",
	LessThanEqual:    "le",
	Contains:         "contains",
	Matches:          "matches",
	BitwiseAnd:       "bitwise_and",
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

// operatorTags maps symbolic spellings to operators. Order is
// significant: two-character tags come before their one-character
// prefixes so ">=" is never truncated to ">".
var operatorTags = []struct {
	tag string
	op  Operator
}{
	{"==", Equal},
	{"!=", NotEqual},
	{">=", GreaterThanEqual},
	{"<=", LessThanEqual},
	{">", GreaterThan},
	{"<", LessThan},
	{"~", Matches},
	{"&", BitwiseAnd},
}

// ParseOperator scans a symbolic operator from the start of input. Tags
// are tried in table order, first match wins.
func ParseOperator(input string) (Operator, string, error) {
	for _, t := range operatorTags {
		if strings.HasPrefix(input, t.tag) {
			return t.op, input[len(t.tag):], nil
		}
	}
	return 0, input, scanError(NoMatch, input)
}

// operatorKeywords maps keyword spellings to operators. Classification
// is whole-word only: a run that merely starts with a keyword is an
// identifier.
var operatorKeywords = map[string]Operator{
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

// IdentifierLike is either a bare identifier or a keyword-spelled
// operator. The identifier text is a view into the scanned input, never
// a copy, so the input must outlive it.
type IdentifierLike struct {
	Name string
	Op   Operator
	IsOp bool
}

// ParseIdentifierLike scans a word and classifies it against the
// operator keyword table. The word is the maximal run of alphabetic
// characters (plus '_' after the first, so spellings like bitwise_and
// stay one word); any word not in the table is returned as an
// identifier.
func ParseIdentifierLike(input string) (IdentifierLike, string, error) {
	if len(input) == 0 || !isAlpha(input[0]) {
		return IdentifierLike{}, input, scanError(NoMatch, input)
	}

	n := 1
	for n < len(input) && (isAlpha(input[n]) || input[n] == '_') {
		n++
	}

	word := input[:n]
	if op, ok := operatorKeywords[word]; ok {
		return IdentifierLike{Op: op, IsOp: true}, input[n:], nil
	}
	return IdentifierLike{Name: word}, input[n:], nil
}
