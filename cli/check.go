package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/wirelex/wirelex/lexer"
	"github.com/wirelex/wirelex/telemetry"
)

type CheckCmd struct {
	Input string `help:"Filter expression, filename, or '-' for stdin." arg:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	source, label, err := resolveInput(cmd.Input)
	if err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				checkTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(label)))
		defer reportTelemetry()
	}

	tokens, errs := checkSource(runCtx, source)
	if len(errs) > 0 {
		renderer := NewErrorRenderer(source)
		formatted := renderer.RenderAll(tokens, errs)
		_, _ = fmt.Fprintln(ctx.Stderr, formatted)

		printError(ctx.Stderr, fmt.Sprintf("%d scan failure(s) found", len(errs)))

		reportTelemetry()
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%s: %d token(s), no scan failures", label, len(tokens)-1))

	return nil
}

// checkSource lexes the source and returns the tokens along with any
// recorded scan failures.
func checkSource(ctx context.Context, source string) ([]lexer.Token, []error) {
	timer := telemetry.FromContext(ctx).Start("lex")
	defer timer.End()

	l := lexer.New(source)
	tokens := l.ScanAll()
	return tokens, l.Errors()
}
