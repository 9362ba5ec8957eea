package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/signalforge/pkg/config"
	"github.com/dmitrymomot/signalforge/pkg/logger"
	"github.com/dmitrymomot/signalforge/pkg/validator"
)

var errValidationFailed = errors.New("validation failed")

// cliConfig is read from the environment before every command.
type cliConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// app carries the streams and dependencies shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel string
	logger   *slog.Logger
	limits   validator.Config
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "sfvalidate",
		Short: "Validate data documents against declarative rules",
		Long: `sfvalidate runs the signalforge validation engine from the command line.

Rules and data are read from JSON or YAML files. Rules map field patterns,
including wildcards such as items.*.sku, to lists of rule descriptors.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	root.AddCommand(newValidateCmd(a), newRulesCmd(a))
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
	}

	a.logger = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(a.stderr),
		logger.WithComponent("sfvalidate"),
		// Debug output points at the emitting source line.
		logger.WithHandlerOptions(&slog.HandlerOptions{
			Level:     level,
			AddSource: level <= slog.LevelDebug,
		}),
	)

	limits, err := validator.LoadConfig()
	if err != nil {
		return err
	}
	a.limits = limits
	return nil
}

// newValidator builds a validator for the rules file at path.
func (a *app) newValidator(path string, opts ...validator.Option) (*validator.Validator, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}
	opts = append([]validator.Option{
		validator.WithConfig(a.limits),
		validator.WithLogger(a.logger),
	}, opts...)

	v, err := validator.New(rules, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
