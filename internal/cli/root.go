// Package cli wires the cobra command surface around the dispatcher.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
	"github.com/jsamuelsen/quotebook/internal/platform/metrics"
	"github.com/jsamuelsen/quotebook/internal/present/format"
	"github.com/jsamuelsen/quotebook/internal/store"
)

// BuildInfo carries the build-time variables injected via ldflags in main.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root command and runs it.
func Execute(info BuildInfo) error {
	return NewRootCmd(info).Execute()
}

// NewRootCmd constructs the cobra root command and wires dependencies.
// Running the bare command starts an interactive session; `exec` runs a
// single raw command.
func NewRootCmd(info BuildInfo) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "quotebook",
		Short: "quotebook - a command-driven quote store",
		Long: `quotebook stores unique quotes for the lifetime of a session.

Commands follow the quote grammar:
  quote "<text>"          add a quote verbatim
  quote uwu"<text>"       uwu-ify the text, then add it
  quote piglatin"<text>"  reserved, not implemented
  quote list              print the stored quotes as a bullet list`,
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(profile, info, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, a))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), appFromContext(cmd.Context()))
		},
	}

	cmd.PersistentFlags().StringVar(&profile, "profile", "",
		"config profile (configs/<profile>.yaml); defaults to $QUOTEBOOK_ENVIRONMENT")

	cmd.AddCommand(newExecCmd())
	cmd.AddCommand(newVersionCmd(info))

	return cmd
}

// App holds the wired application for one invocation.
type App struct {
	Config     *config.Config
	Dispatcher *app.Dispatcher
	Recorder   *metrics.Recorder
	ErrOut     io.Writer
}

// appFromContext returns the App stashed by PersistentPreRunE.
func appFromContext(ctx context.Context) *App {
	a, _ := ctx.Value(appKey).(*App)
	return a
}

// buildApp loads config, then wires logging, metrics, the store and the
// dispatcher, in that order. Fails fast on invalid config.
func buildApp(profile string, info BuildInfo, out, errOut io.Writer) (*App, error) {
	if profile == "" {
		profile = os.Getenv("QUOTEBOOK_ENVIRONMENT")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Debug("starting quotebook",
		"version", info.Version,
		"commit", info.Commit,
		"environment", cfg.App.Environment,
	)

	recorder := metrics.NewRecorder()

	dispatcher := app.NewDispatcher(app.DispatcherConfig{
		Repo:     store.NewMemory(),
		Logger:   logger,
		Recorder: recorder,
		Out:      out,
		Render:   chooseRenderer(cfg.Render.Pretty, out),
	})

	return &App{
		Config:     cfg,
		Dispatcher: dispatcher,
		Recorder:   recorder,
		ErrOut:     errOut,
	}, nil
}

// chooseRenderer picks the listing renderer. In auto mode pretty
// rendering is used only when the output is a terminal, so piped output
// stays plain markdown.
func chooseRenderer(mode string, out io.Writer) app.Renderer {
	switch mode {
	case "always":
		return format.WritePretty
	case "never":
		return format.WritePlain
	default: // auto
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return format.WritePretty
		}
		return format.WritePlain
	}
}
