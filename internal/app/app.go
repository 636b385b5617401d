// Package app wires configuration, arithmetic and presentation into the
// bigcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/ui"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger used for diagnostics instead of the console
// logger on ErrWriter.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	if app.Logger == nil {
		app.Logger = newConsoleLogger(errWriter, cfg)
	}
	if !cfg.ShowVersion {
		cfg, err = config.ResolveThresholds(cfg, app.Logger)
		if err != nil {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
			return nil, err
		}
		if err := cfg.Thresholds().Validate(); err != nil {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
			return nil, apperrors.ValidationError{Field: "thresholds", Message: err.Error()}
		}
	}

	app.Config = cfg
	return app, nil
}

func newConsoleLogger(w io.Writer, cfg config.AppConfig) *logging.ZerologAdapter {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: cfg.NoColor}
	zl := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return logging.NewZerologAdapter(zl)
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	ui.InitTheme(a.Config.NoColor)

	if a.Config.SaveProfile != "" {
		if err := config.SaveProfile(a.Config.SaveProfile, config.NewProfile(a.Config.Thresholds())); err != nil {
			a.Logger.Error("saving threshold profile failed", err, logging.String("path", a.Config.SaveProfile))
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		a.Logger.Debug("threshold profile saved", logging.String("path", a.Config.SaveProfile))
	}

	return a.runCalculate(ctx, out)
}

// IsHelpError checks if the error is a help flag error (-h or -help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
