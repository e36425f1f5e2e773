package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/i--storm/structures/schema"
)

var initForce bool

// starterSchema seeds a new project with one structure showing the
// common field shapes: a scalar without a default, one with, and a
// container default.
var starterSchema = &schema.SchemaFile{
	Structures: []schema.StructureSpec{
		{
			Name: "user",
			Fields: []schema.FieldSpec{
				{Name: "login", Kind: "text"},
				{Name: "age", Kind: "integer", Default: 0, HasDefault: true},
				{Name: "tags", Kind: "set", Default: []any{}, HasDefault: true},
			},
		},
	},
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <schema.yaml>",
		Short: "Write a starter schema file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}

	cmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := schema.WriteFile(starterSchema, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

	return nil
}
