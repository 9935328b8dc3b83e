package cli

import (
	"strings"

	"github.com/wirelex/wirelex/lexer"
)

// ErrorRenderer renders scan failures with terminal styling and source
// context.
type ErrorRenderer struct {
	source string
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source string) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// RenderToken formats the failure behind an ILLEGAL token: the message,
// the offending source line and a caret under the failing column.
func (r *ErrorRenderer) RenderToken(tok lexer.Token, err error) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(err.Error()))
	buf.WriteString("\n\n")

	lines := strings.Split(r.source, "\n")

	startLine := tok.Line - 3
	endLine := tok.Line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(lines) {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(dimStyle.Render(lines[i]))
		buf.WriteByte('\n')

		if i == tok.Line-1 && tok.Column > 0 {
			buf.WriteString("   ")
			for j := 0; j < tok.Column-1; j++ {
				buf.WriteByte(' ')
			}
			buf.WriteString(errorStyle.Render("^"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// RenderAll formats the failures of a scanned token stream, pairing each
// ILLEGAL token with its recorded error in source order.
func (r *ErrorRenderer) RenderAll(tokens []lexer.Token, errs []error) string {
	var buf strings.Builder

	n := 0
	for _, tok := range tokens {
		if tok.Type != lexer.ILLEGAL || n >= len(errs) {
			continue
		}
		if n > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(r.RenderToken(tok, errs[n]))
		n++
	}

	return buf.String()
}
