package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i--storm/structures/internal/gen"
	"github.com/i--storm/structures/internal/plan"
	"github.com/i--storm/structures/options"
	"github.com/i--storm/structures/schema"
)

var (
	genOutputDir string
	genPackage   string
	genFeatures  []string
)

// NewGenCommand creates the gen command
func NewGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <schema.yaml>",
		Short: "Generate typed Go accessors from a schema file",
		Long: `Validate the schema, then emit one Go file per declared structure
into the output directory.

Features select what the generated types carry; pass --features with
any of typed-accessors, must-constructors, kind-comments,
isset-helpers, zerolog, all, none. Omitting the flag selects the
default set (everything except zerolog).`,
		Example: `  structures-gen gen schema.yaml -o ./internal/model -p model
  structures-gen gen schema.yaml -o ./gen -p records --features all`,
		Args: cobra.ExactArgs(1),
		RunE: runGen,
	}

	cmd.Flags().StringVarP(&genOutputDir, "out", "o", "./generated", "output directory")
	cmd.Flags().StringVarP(&genPackage, "package", "p", "structures", "package name of the generated files")
	cmd.Flags().StringSliceVar(&genFeatures, "features", nil, "feature flags for the generated code")

	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr())

	features, err := parseFeatures(genFeatures)
	if err != nil {
		return err
	}

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

	p, err := plan.Build(sf, plan.Options{Package: genPackage})
	if err != nil {
		return err
	}

	cfg := gen.DefaultConfig()
	cfg.PackageName = genPackage
	cfg.OutputDir = genOutputDir
	cfg.Features = features

	files, err := gen.NewGenerator(cfg, gen.WithLogger(log)).Generate(p)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, genOutputDir); err != nil {
		return err
	}

	log.Info().Int("files", len(files)).Str("dir", genOutputDir).Msg("generated")

	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(genOutputDir, f.Filename))
	}

	return nil
}

// parseFeatures folds the --features values into a flag set. An empty
// list selects the default feature set.
func parseFeatures(names []string) (options.FeatureEnum, error) {
	if len(names) == 0 {
		return options.FeatureDefault, nil
	}

	features := options.FeatureNone

	for _, name := range names {
		f, ok := options.ParseFeature(strings.TrimSpace(name))
		if !ok {
			return 0, fmt.Errorf("unknown feature %q (known: %s)",
				name, strings.Join(options.FeatureNames(), ", "))
		}

		features |= f
	}

	return features, nil
}
