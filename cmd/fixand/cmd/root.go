package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fixand/internal/core"
)

const usageLine = "Usage: fixand <file>"

// ErrUsage is returned when the command is not given exactly one file.
var ErrUsage = errors.New("expected exactly one file argument")

// newRootCmd builds the fixand command. Output goes to the command's out writer
// so tests can capture it.
func newRootCmd() *cobra.Command {
	var (
		cfg     core.Config
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "fixand <file>",
		Short: "Rewrite {cond && (...)} expressions into {cond ? (...) : null}",
		Long: `fixand rewrites conditional-rendering expressions of the form {cond && (...)}
into {cond ? (...) : null} so falsy values such as 0 or "" are never rendered as text.
The file is rewritten in place.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			defer func() { _ = logger.Sync() }()

			return core.Run(args[0], cfg, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Report what would change without writing the file")
	cmd.Flags().BoolVar(&cfg.Stdout, "stdout", false, "Print the rewritten content instead of writing the file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every rewrite and skipped candidate")
	return cmd
}

// newLogger returns a console logger on w. Only warnings are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	))
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(stdout, usageLine)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

// Execute runs the root command against the process arguments.
// This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
