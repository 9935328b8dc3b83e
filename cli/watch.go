package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/wirelex/wirelex/lexer"
)

type WatchCmd struct {
	File string `help:"Filter file to watch." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stdout, "watching %s", cmd.File)
	cmd.checkOnce(ctx)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd.runWatcher(runCtx, ctx, watcher)
	return nil
}

// runWatcher processes file system events with debouncing.
func (cmd *WatchCmd) runWatcher(runCtx context.Context, ctx *kong.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	// Debounce - editors often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-runCtx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				// Atomic saves replace the inode, so re-add the path
				_ = watcher.Add(cmd.File)
				cmd.checkOnce(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

// checkOnce lexes the watched file and prints the outcome.
func (cmd *WatchCmd) checkOnce(ctx *kong.Context) {
	raw, err := os.ReadFile(cmd.File)
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to read %s: %v", cmd.File, err))
		return
	}
	source := string(raw)

	l := lexer.New(source)
	tokens := l.ScanAll()

	if errs := l.Errors(); len(errs) > 0 {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.RenderAll(tokens, errs))
		printError(ctx.Stderr, fmt.Sprintf("%d scan failure(s) found", len(errs)))
		return
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%s: %d token(s), no scan failures", cmd.File, len(tokens)-1))
}
