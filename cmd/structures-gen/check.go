package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i--storm/structures/internal/diagnostic"
	"github.com/i--storm/structures/schema"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema.yaml>",
		Short: "Validate a schema file and print diagnostics",
		Example: `  structures-gen check schema.yaml
  structures-gen check -v schema.yaml   # include infos`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr())
	loader := schema.NewLoader(schema.WithLogger(log))

	sf, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}

	diags := loader.Validate(sf)
	printDiagnostics(cmd, diags)

	if diags.HasErrors() {
		return fmt.Errorf("schema %s: %d error(s)", args[0], len(diags.Errors))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d structure(s), no errors\n", args[0], len(sf.Structures))

	return nil
}

// printDiagnostics renders errors to stderr and, unless quieted,
// warnings to stdout. Infos need -v.
func printDiagnostics(cmd *cobra.Command, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), d.Format())
	}

	if rootQuiet {
		return
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(cmd.OutOrStdout(), d.Format())
	}

	if rootVerbose > 0 {
		for _, d := range diags.Infos {
			fmt.Fprintln(cmd.OutOrStdout(), d.Format())
		}
	}
}
