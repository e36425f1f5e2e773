package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	rootVerbose int
	rootQuiet   bool
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "structures-gen",
		Short: "Typed Go accessors from YAML structure declarations",
		Long: `structures-gen reads structure declarations from YAML and generates
Go types with coercing accessors on top of the structures library.

Workflow:
  structures-gen init schema.yaml   # write a starter schema
  structures-gen check schema.yaml  # validate, print diagnostics
  structures-gen gen schema.yaml -o ./gen -p mypkg`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&rootVerbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "log errors only")

	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewGenCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	return nil
}

// newLogger builds the console logger commands log through. Verbosity
// maps -q to errors only, the default to warnings, -v to info and -vv
// to debug.
func newLogger(out io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel

	switch {
	case rootQuiet:
		level = zerolog.ErrorLevel
	case rootVerbose == 1:
		level = zerolog.InfoLevel
	case rootVerbose >= 2:
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}
