package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// runREPL reads commands interactively until exit/quit, Ctrl-C or EOF.
// A failed command is reported and the loop continues; the store is
// untouched by failures.
func runREPL(ctx context.Context, a *App) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := a.Config.REPL.HistoryFile
	loadHistory(line, histPath)
	defer saveHistory(line, histPath)

	for {
		input, err := line.Prompt(a.Config.REPL.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(a.ErrOut)
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}

		line.AppendHistory(input)

		if err := a.Dispatcher.Run(ctx, input); err != nil {
			fmt.Fprintf(a.ErrOut, "error: %v\n", err)
		}
	}
}

// loadHistory restores REPL history if a history file is configured.
func loadHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.ReadHistory(f)
}

// saveHistory persists REPL history; best effort, errors are ignored.
func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.WriteHistory(f)
}
