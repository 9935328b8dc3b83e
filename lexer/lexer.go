package lexer

// Lexer implements a zero-copy token-stream scanner over a filter
// expression.
//
// The grammar layer normally drives the Parse* scanners directly, asking
// for the token kind it expects next. The Lexer instead takes a
// best-effort pass over a whole expression without grammar context,
// which is what diagnostics, token dumps and fuzzing want. Like the
// scanners it never copies token text: tokens store byte offsets into
// the source buffer.

// Lexer tokenizes a filter expression.
type Lexer struct {
	source   string    // Source buffer
	pos      int       // Current byte position
	line     int       // Current line (1-indexed)
	column   int       // Current column (1-indexed)
	tokens   []Token   // Token buffer (pre-allocated)
	errs     []error   // Scan failures behind ILLEGAL tokens
	interner *Interner // String interning pool
}

// New creates a new lexer for the given source.
func New(source string) *Lexer {
	// Filter expressions are short: one token per ~4 bytes is a safe
	// overestimate that avoids slice growth.
	estimatedTokens := len(source)/4 + 8

	return &Lexer{
		source:   source,
		line:     1,
		column:   1,
		tokens:   make([]Token, 0, estimatedTokens),
		interner: NewInterner(16),
	}
}

// Interner returns the string interner.
func (l *Lexer) Interner() *Interner {
	return l.interner
}

// Errors returns the scan failures recorded for ILLEGAL tokens, in
// source order.
func (l *Lexer) Errors() []error {
	return l.errs
}

// Source returns the buffer the lexer scans.
func (l *Lexer) Source() string {
	return l.source
}

// Text returns the text of a token. Identifier text is interned so
// repeated field names share one string instance.
func (l *Lexer) Text(tok Token) string {
	text := tok.Text(l.source)
	if tok.Type == IDENT {
		return l.interner.Intern(text)
	}
	return text
}

// ScanAll lexes the entire source and returns all tokens. This is a
// single-pass scanner with no backtracking across token boundaries.
func (l *Lexer) ScanAll() []Token {
	for l.pos < len(l.source) {
		l.skipWhitespace()

		if l.pos >= len(l.source) {
			break
		}

		tok := l.scanToken()
		l.tokens = append(l.tokens, tok)
	}

	l.tokens = append(l.tokens, Token{
		Type:   EOF,
		Start:  l.pos,
		End:    l.pos,
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens
}

// scanToken scans the next token from the current position.
func (l *Lexer) scanToken() Token {
	start := l.pos
	startLine := l.line
	startCol := l.column
	rest := l.source[l.pos:]
	ch := rest[0]

	emit := func(typ TokenType, unconsumed string) Token {
		l.advanceBy(len(rest) - len(unconsumed))
		return Token{typ, start, l.pos, startLine, startCol}
	}

	switch {
	// Strings: "..."
	case ch == '"':
		_, after, err := ParseString(rest)
		if err != nil {
			// Unterminated or malformed: the remainder of the input is
			// the offending token.
			l.errs = append(l.errs, err)
			return emit(ILLEGAL, "")
		}
		return emit(STRING, after)

	// Addresses before plain numbers: a MAC or IPv4 address starts
	// with digits too, and the longer forms must win.
	case isDecDigit(ch):
		if _, after, err := ParseEthernet(rest); err == nil {
			return emit(ETHERNET, after)
		}
		if _, after, err := ParseIPv4(rest); err == nil {
			return emit(IPV4, after)
		}
		_, after, err := ParseUnsigned(rest)
		if err != nil {
			l.errs = append(l.errs, err)
			return emit(ILLEGAL, rest[illegalRun(rest):])
		}
		return emit(INT, after)

	// Words: MAC addresses may start with a hex letter, otherwise a
	// keyword-spelled operator or identifier.
	case isAlpha(ch):
		if isHexDigit(ch) {
			if _, after, err := ParseEthernet(rest); err == nil {
				return emit(ETHERNET, after)
			}
		}
		ident, after, err := ParseIdentifierLike(rest)
		if err != nil {
			l.errs = append(l.errs, err)
			return emit(ILLEGAL, rest[illegalRun(rest):])
		}
		if ident.IsOp {
			return emit(OPERATOR, after)
		}
		return emit(IDENT, after)

	case ch == '(':
		return emit(LPAREN, rest[1:])
	case ch == ')':
		return emit(RPAREN, rest[1:])

	default:
		_, after, err := ParseOperator(rest)
		if err != nil {
			l.errs = append(l.errs, err)
			return emit(ILLEGAL, rest[1:])
		}
		return emit(OPERATOR, after)
	}
}

// illegalRun returns the length of the run an ILLEGAL token should
// cover: everything up to the next whitespace or structural byte, so one
// bad literal produces one diagnostic instead of a cascade.
func illegalRun(input string) int {
	n := 0
	for n < len(input) {
		switch input[n] {
		case ' ', '\t', '\n', '\r', '(', ')', '"':
			return n
		}
		n++
	}
	return n
}

// skipWhitespace skips whitespace and updates line/column tracking.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			break
		}
		if ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

// advanceBy consumes n bytes, keeping line/column tracking accurate even
// when the consumed text spans lines (multi-line strings).
func (l *Lexer) advanceBy(n int) {
	for i := 0; i < n && l.pos < len(l.source); i++ {
		if l.source[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}
