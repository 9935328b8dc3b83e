package lexer

// TokenType represents the type of token scanned from the input.
type TokenType uint8

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	INT      // 42, 0x2a, 052
	ETHERNET // 12:34:56:78:90:ab
	IPV4     // 192.168.0.1
	STRING   // "quoted string"
	IDENT    // http.host, port (identifier words)

	// Operators, symbolic or keyword-spelled
	OPERATOR // ==, >=, ~, contains, bitwise_and

	// Symbols
	LPAREN // (
	RPAREN // )
)

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	INT:      "INT",
	ETHERNET: "ETHERNET",
	IPV4:     "IPV4",
	STRING:   "STRING",
	IDENT:    "IDENT",

	OPERATOR: "OPERATOR",

	LPAREN: "(",
	RPAREN: ")",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token with zero-copy semantics. Instead of
// storing the token text as a string (which would allocate), it stores
// byte offsets into the original source buffer.
type Token struct {
	Type   TokenType
	Start  int // Byte offset into source buffer
	End    int // End offset (exclusive)
	Line   int // Line number (1-indexed)
	Column int // Column number (1-indexed)
}

// Text materializes the token text from the source buffer. The returned
// string shares the source's backing storage.
func (t Token) Text(source string) string {
	if t.Start > len(source) || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return source[t.Start:t.End]
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
