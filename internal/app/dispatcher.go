// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Parse and dispatch raw commands
//   - Enforce the add-quote policy (length cap, duplicate notice)
//   - Handle cross-cutting concerns (logging, metrics)
//
// What does NOT belong here:
//   - Terminal/REPL specifics (that's internal/cli)
//   - Storage details (that's the repository adapter)
//   - The text transformations themselves (that's internal/transform)
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
	"github.com/jsamuelsen/quotebook/internal/platform/metrics"
	"github.com/jsamuelsen/quotebook/internal/ports"
	"github.com/jsamuelsen/quotebook/internal/present/format"
	"github.com/jsamuelsen/quotebook/internal/transform"
)

// Recognized command forms. Matching is case-sensitive and ordered;
// the first match wins.
const (
	prefixUwu      = `quote uwu"`
	prefixPigLatin = "quote piglatin"
	prefixList     = "quote list"
	prefixStraight = `quote "`
	suffixStraight = `"`
	prefixCurly    = "quote “" // quote “
	suffixCurly    = "”"       // ”
)

// duplicateNotice is printed instead of propagating a duplicate error.
const duplicateNotice = "Quote has already been added previously"

// Renderer writes a quote listing to w.
type Renderer func(w io.Writer, texts []string) error

// Dispatcher parses raw command strings and performs exactly one action
// per command. It depends on port interfaces, not concrete
// implementations, following the Dependency Inversion Principle.
type Dispatcher struct {
	repo     ports.QuoteRepository
	logger   *slog.Logger
	recorder *metrics.Recorder
	out      io.Writer
	render   Renderer
}

// DispatcherConfig contains dependencies for the dispatcher.
// Repo is required; everything else has a sensible default.
type DispatcherConfig struct {
	Repo     ports.QuoteRepository
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Out      io.Writer
	Render   Renderer
}

// NewDispatcher creates a dispatcher with the provided dependencies.
// Panics if no repository is given: there is no meaningful fallback.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.Repo == nil {
		panic("app: NewDispatcher requires a QuoteRepository")
	}

	logger := slog.Default()
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	out := io.Writer(os.Stdout)
	if cfg.Out != nil {
		out = cfg.Out
	}

	render := Renderer(format.WritePlain)
	if cfg.Render != nil {
		render = cfg.Render
	}

	return &Dispatcher{
		repo:     cfg.Repo,
		logger:   logger.With(slog.String("component", "app.Dispatcher")),
		recorder: cfg.Recorder,
		out:      out,
		render:   render,
	}
}

// Run parses and executes one raw command.
//
// Every error except duplicates propagates to the caller; a duplicate
// add is reported on the output writer and swallowed here. A failed
// command never mutates the store.
func (d *Dispatcher) Run(ctx context.Context, command string) error {
	ctx = logging.WithCommandID(logging.WithContext(ctx, d.logger), uuid.NewString())
	logger := logging.FromContext(ctx)

	err := d.dispatch(ctx, logger, command)
	d.recorder.Command(resultLabel(err))

	if err != nil {
		logger.DebugContext(ctx, "command failed",
			slog.String("command", command),
			slog.Any("error", err),
		)
	}

	return err
}

// dispatch matches command against the recognized forms, in order.
func (d *Dispatcher) dispatch(ctx context.Context, logger *slog.Logger, command string) error {
	switch {
	case strings.HasPrefix(command, prefixUwu):
		raw, ok := payload(command, prefixUwu, suffixStraight)
		if !ok {
			return domain.NewInvalidCommandError(command)
		}

		result, err := transform.Uwuify(raw)
		if err != nil {
			return fmt.Errorf("transforming quote: %w", err)
		}

		if result.Partial {
			// Non-fatal: the add proceeds with the partially
			// transformed text.
			logger.WarnContext(ctx, "quote too long, only partially transformed",
				slog.Int("limit", domain.MaxQuoteLength),
			)
		}

		return d.addQuote(ctx, logger, result.Text, domain.ModeUwu)

	case strings.HasPrefix(command, prefixPigLatin):
		// The payload is deliberately never extracted or validated;
		// the command fails before parsing it.
		return domain.NewNotImplementedError("command")

	case strings.HasPrefix(command, prefixList):
		return d.list(ctx, logger)

	default:
		if raw, ok := payload(command, prefixStraight, suffixStraight); ok {
			return d.addQuote(ctx, logger, raw, domain.ModeNormal)
		}
		if raw, ok := payload(command, prefixCurly, suffixCurly); ok {
			return d.addQuote(ctx, logger, raw, domain.ModeNormal)
		}

		return domain.NewInvalidCommandError(command)
	}
}

// addQuote owns the length and duplication policy for every add path.
func (d *Dispatcher) addQuote(ctx context.Context, logger *slog.Logger, text string, mode domain.VariantMode) error {
	if n := utf8.RuneCountInString(text); n > domain.MaxQuoteLength {
		return domain.NewQuoteTooLongError(n, domain.MaxQuoteLength)
	}

	err := d.repo.Add(ctx, domain.NewQuote(text, mode))
	if err != nil {
		if domain.IsDuplicate(err) {
			// Duplicates are a user notice, not a failure; they never
			// propagate past this point.
			d.recorder.Duplicate()
			logger.InfoContext(ctx, "duplicate quote ignored",
				slog.String("mode", mode.String()),
			)
			fmt.Fprintln(d.out, duplicateNotice)

			return nil
		}

		return fmt.Errorf("adding quote: %w", err)
	}

	d.recorder.QuoteStored()
	logger.InfoContext(ctx, "quote added", slog.String("mode", mode.String()))

	return nil
}

// list renders every stored quote to the output writer.
func (d *Dispatcher) list(ctx context.Context, logger *slog.Logger) error {
	texts, err := d.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing quotes: %w", err)
	}

	logger.DebugContext(ctx, "listing quotes", slog.Int("count", len(texts)))

	if err := d.render(d.out, texts); err != nil {
		return fmt.Errorf("rendering quotes: %w", err)
	}

	return nil
}

// payload extracts the text between prefix and suffix. The offsets are
// recomputed from the matched prefix so the grammar and the extraction
// cannot drift apart.
func payload(command, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(command, prefix) || !strings.HasSuffix(command, suffix) {
		return "", false
	}
	// The closing delimiter must not be the same byte run that closed
	// the prefix: `quote "` alone has no payload.
	if len(command) < len(prefix)+len(suffix) {
		return "", false
	}

	return command[len(prefix) : len(command)-len(suffix)], true
}

// resultLabel maps a dispatch outcome to its metrics label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case domain.IsInvalidCommand(err):
		return metrics.ResultInvalid
	case domain.IsQuoteTooLong(err):
		return metrics.ResultTooLong
	case domain.IsNotModified(err):
		return metrics.ResultNotModified
	case domain.IsNotImplemented(err):
		return metrics.ResultNotImplemented
	default:
		return metrics.ResultError
	}
}
