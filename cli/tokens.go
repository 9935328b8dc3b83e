package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"

	"github.com/wirelex/wirelex/lexer"
)

type TokensCmd struct {
	Input   string `help:"Filter expression, filename, or '-' for stdin." arg:""`
	Repr    bool   `help:"Dump raw token structs instead of the table."`
	Summary bool   `help:"Print a per-type token count summary."`
}

func (cmd *TokensCmd) Run(ctx *kong.Context, globals *Globals) error {
	source, label, err := resolveInput(cmd.Input)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	tokens := l.ScanAll()

	if cmd.Repr {
		repr.Println(tokens)
		return nil
	}

	printInfof(ctx.Stdout, "%s: %d token(s)", label, len(tokens)-1)
	printTokenTable(ctx, l, tokens)

	if cmd.Summary {
		_, _ = fmt.Fprintln(ctx.Stdout)
		printSummary(ctx, tokens)
	}

	if errs := l.Errors(); len(errs) > 0 {
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d scan failure(s) found", len(errs)))
		return NewCommandError(1)
	}

	return nil
}

// printTokenTable prints one row per token: type, position and text.
// Column widths are display widths, so wide runes in string literals
// keep the table aligned.
func printTokenTable(ctx *kong.Context, l *lexer.Lexer, tokens []lexer.Token) {
	typeWidth, textWidth := 0, 0
	for _, tok := range tokens {
		if w := runewidth.StringWidth(tok.Type.String()); w > typeWidth {
			typeWidth = w
		}
		if w := runewidth.StringWidth(l.Text(tok)); w > textWidth {
			textWidth = w
		}
	}

	for _, tok := range tokens {
		if tok.Type == lexer.EOF {
			continue
		}

		style := typeStyle
		if tok.Type == lexer.ILLEGAL {
			style = errorStyle
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "  %s  %s  %s\n",
			style.Render(runewidth.FillRight(tok.Type.String(), typeWidth)),
			dimStyle.Render(fmt.Sprintf("%3d:%-3d", tok.Line, tok.Column)),
			runewidth.FillRight(l.Text(tok), textWidth),
		)
	}
}

// printSummary prints token counts grouped by type.
func printSummary(ctx *kong.Context, tokens []lexer.Token) {
	counts := make(map[lexer.TokenType]int)
	for _, tok := range tokens {
		if tok.Type != lexer.EOF {
			counts[tok.Type]++
		}
	}

	types := make([]lexer.TokenType, 0, len(counts))
	for typ := range counts {
		types = append(types, typ)
	}
	slices.SortFunc(types, func(a, b lexer.TokenType) int {
		if d := counts[b] - counts[a]; d != 0 {
			return d
		}
		return int(a) - int(b)
	})

	for _, typ := range types {
		_, _ = fmt.Fprintf(ctx.Stdout, "  %s %d\n",
			typeStyle.Render(runewidth.FillRight(typ.String(), 8)),
			counts[typ],
		)
	}
}
