// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Command v4calc evaluates vector arithmetic scripts
// and prints the debug text of each result.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gviegas/vecmath/internal/script"
)

// Set by the linker.
var version = "dev"

type options struct {
	verbose bool
	logJSON bool
}

// newLogger creates a logger writing to w, in JSON if
// opts.logJSON is set and at debug level if opts.verbose is set.
func newLogger(w io.Writer, opts *options) *slog.Logger {
	ho := &slog.HandlerOptions{Level: slog.LevelInfo}
	if opts.verbose {
		ho.Level = slog.LevelDebug
	}
	if opts.logJSON {
		return slog.New(slog.NewJSONHandler(w, ho))
	}
	return slog.New(slog.NewTextHandler(w, ho))
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "v4calc",
		Short:         "Evaluate 4-component vector arithmetic",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every evaluated step")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")

	eval := &cobra.Command{
		Use:   "eval <script.yaml>",
		Short: "Evaluate a script",
		Long: `Evaluate the steps of a YAML script in order and print one
line per step in the form "<step> <op> = <result>".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts)
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("script loaded", "path", args[0], "steps", len(s.Steps))
			_, err = s.Eval(cmd.OutOrStdout(), logger)
			return err
		},
	}

	ver := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "v4calc %s (%s)\n", version, runtime.Version())
			return err
		},
	}

	root.AddCommand(eval, ver)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "v4calc:", err)
		os.Exit(1)
	}
}
