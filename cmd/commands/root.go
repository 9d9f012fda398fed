// Package commands implements the migrate-plugin and migrate-config CLIs.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/ocmigrate/cmd"
	"github.com/thoreinstein/ocmigrate/internal/config"
	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/logging"
	"github.com/thoreinstein/ocmigrate/internal/report"
)

// debugEnv raises verbosity when no -v flag is given.
const debugEnv = "OCMIGRATE_DEBUG"

// globalOptions holds the flags shared by both commands.
type globalOptions struct {
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string
	reportFile string
	dryRun     bool
	verify     bool

	// cfg is loaded in PersistentPreRunE.
	cfg *config.Config
}

// newRootCommand adds the shared flags and setup to cmd.
func newRootCommand(c *cobra.Command, opts *globalOptions) *cobra.Command {
	flags := c.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v",
		"increase verbosity level (-v debug, -vv trace)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false,
		"suppress non-error output")
	flags.StringVar(&opts.logFormat, "log-format", "text",
		"log format: text, json")
	flags.StringVar(&opts.logFile, "log-file", "",
		"write logs to file in JSON format")
	flags.StringVar(&opts.configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/ocmigrate/config.yaml)")
	flags.BoolVar(&opts.dryRun, "dry-run", false,
		"show what would be migrated without writing anything")
	flags.StringVar(&opts.reportFile, "report", "",
		"write a run report to this file (.json, .yaml, .yml or .toml)")
	flags.BoolVar(&opts.verify, "verify", false,
		"check that every rewritten header is valid YAML")

	c.Version = cmd.Version
	c.SetVersionTemplate(cmd.VersionInfo(c.Name()))

	// Silence errors and usage so Execute controls error output
	c.SilenceErrors = true
	c.SilenceUsage = true

	c.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		if err := opts.setupLogging(c); err != nil {
			return err
		}
		return opts.loadConfig()
	}

	return c
}

// setupLogging configures the default logger based on verbosity flags.
func (o *globalOptions) setupLogging(c *cobra.Command) error {
	if o.quiet && o.verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"Pass either -q or -v, not both")
	}

	var level slog.Level
	if o.quiet {
		level = slog.LevelError
	} else {
		v := o.verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 1 // Debug
				case "2":
					v = 2 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	var primary slog.Handler
	switch logging.Format(o.logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(c.ErrOrStderr(), &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: logging.RedactAttr,
		})
	case logging.FormatText:
		primary = logging.NewHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", o.logFormat),
			"Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primary}

	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: logging.RedactAttr,
		}))
	}

	logger := slog.New(logging.Tee(handlers...))
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads and validates the config file.
func (o *globalOptions) loadConfig() error {
	config.Init()

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return errors.NewConfigError(errors.Wrapf(errors.ErrInvalidConfig, "%s", strings.Join(msgs, "; ")))
	}

	o.cfg = cfg
	return nil
}

// finish prints the run summary and writes the --report file. The report
// is written on dry runs too.
func (o *globalOptions) finish(c *cobra.Command, rep *report.Report) error {
	if o.reportFile != "" {
		if err := rep.WriteFile(o.reportFile); err != nil {
			return errors.NewUserError(err, "Pick a --report path ending in .json, .yaml, .yml or .toml")
		}
		slog.Info("Wrote report", "path", o.reportFile)
	}

	if o.quiet {
		return nil
	}

	out := c.OutOrStdout()
	logging.ConfigureColor(out)
	return rep.WriteText(out)
}

// Execute runs c and prints any error to its error writer.
// It returns the process exit code.
func Execute(c *cobra.Command) int {
	err := c.ExecuteContext(context.Background())
	if err != nil {
		printError(c.ErrOrStderr(), err)
	}
	return errors.ExitCode(err)
}

// printError writes err and any suggestion it carries.
func printError(w io.Writer, err error) {
	logging.ConfigureColor(w)
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Hint:"), exitErr.Suggestion)
	}
}
