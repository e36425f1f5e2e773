package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"github.com/rs/zerolog"

	"github.com/i--storm/structures/internal/match"
	"github.com/i--storm/structures/internal/plan"
	"github.com/i--storm/structures/options"
)

// Import paths the generated code depends on.
const (
	coerceImport    = "github.com/i--storm/structures/coerce"
	fieldImport     = "github.com/i--storm/structures/field"
	structureImport = "github.com/i--storm/structures/structure"
	decimalImport   = "github.com/shopspring/decimal"
	zerologImport   = "github.com/rs/zerolog"
)

// DefaultHeader is the standard generated-code marker. Tools that
// honor the convention skip files starting with it.
const DefaultHeader = "// Code generated by structures-gen. DO NOT EDIT."

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the package name of the generated files. A plan
	// carrying its own package name wins over it.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Features select which accessors the generated types carry.
	Features options.FeatureEnum
	// Header is the first line of every generated file.
	Header string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName: "structures",
		OutputDir:   "./generated",
		Features:    options.FeatureDefault,
		Header:      DefaultHeader,
	}
}

// Generator emits Go source from a generation plan.
type Generator struct {
	config Config
	log    zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger routes generator debug output to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// NewGenerator creates a Generator with the given configuration. It
// logs nowhere unless WithLogger is given.
func NewGenerator(config Config, opts ...Option) *Generator {
	if config.Header == "" {
		config.Header = DefaultHeader
	}

	g := &Generator{config: config, log: zerolog.Nop()}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// File is one generated Go source file.
type File struct {
	// Filename is the file's name inside the output directory.
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// Generate emits one file per structure in the plan. Output is
// deterministic: the same plan and config produce the same bytes.
func (g *Generator) Generate(p *plan.Plan) ([]File, error) {
	if p == nil {
		return nil, errors.New("plan is nil")
	}

	pkg := p.Package
	if pkg == "" {
		pkg = g.config.PackageName
	}

	var files []File

	for i := range p.Structures {
		file, err := g.generateStructure(pkg, &p.Structures[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Structures[i].Name, err)
		}

		g.log.Debug().
			Str("structure", p.Structures[i].Name).
			Str("file", file.Filename).
			Int("bytes", len(file.Content)).
			Msg("structure rendered")

		files = append(files, *file)
	}

	return files, nil
}

// generateStructure generates the file for a single structure.
func (g *Generator) generateStructure(pkg string, sp *plan.StructurePlan) (*File, error) {
	data := g.buildTemplateData(pkg, sp)

	var buf bytes.Buffer
	if err := structureTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &File{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &File{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the structure template.
type templateData struct {
	Header      string
	PackageName string
	Filename    string
	Imports     []importSpec
	Name        string
	TypeName    string
	VarName     string
	Decl        string
	Fields      []fieldData

	TypedAccessors   bool
	MustConstructors bool
	IsSetHelpers     bool
	ZeroLog          bool
}

// fieldData is one field prepared for the template.
type fieldData struct {
	Attr     string
	Accessor string
	GoType   string
	Zero     string
	KindLine string
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// buildTemplateData constructs the template data for one structure.
func (g *Generator) buildTemplateData(pkg string, sp *plan.StructurePlan) *templateData {
	features := g.config.Features

	data := &templateData{
		Header:      g.config.Header,
		PackageName: pkg,
		Filename:    filename(sp.TypeName),
		Name:        sp.Name,
		TypeName:    sp.TypeName,
		VarName:     sp.VarName,
		Decl:        typeDecl(sp),

		TypedAccessors:   features.Has(options.FeatureTypedAccessors),
		MustConstructors: features.Has(options.FeatureMustConstructors),
		IsSetHelpers:     features.Has(options.FeatureIsSetHelpers),
		ZeroLog:          features.Has(options.FeatureZeroLog),
	}

	kindComments := features.Has(options.FeatureKindComments)

	for i := range sp.Fields {
		fp := &sp.Fields[i]

		fd := fieldData{
			Attr:     fp.Attr,
			Accessor: fp.Accessor,
			GoType:   fp.GoType,
			Zero:     zeroLiteral(fp.GoType),
		}

		if kindComments {
			fd.KindLine = kindComment(fp)
		}

		data.Fields = append(data.Fields, fd)
	}

	data.Imports = collectImports(data)

	return data
}

// kindComment renders the declaration comment above a typed getter.
func kindComment(fp *plan.FieldPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Kind: %s", fp.Kind.Name())

	if fp.Encoding != "" {
		fmt.Fprintf(&b, " (%s)", fp.Encoding)
	}

	if fp.HasDefault {
		fmt.Fprintf(&b, ", default %v.", fp.Default)
	} else {
		b.WriteString(". No default.")
	}

	return b.String()
}

// zeroLiteral returns the literal a typed getter falls back to.
func zeroLiteral(goType string) string {
	switch goType {
	case "int64", "float64":
		return "0"
	case "bool":
		return "false"
	case "string":
		return `""`
	case "decimal.Decimal":
		return "decimal.Decimal{}"
	default:
		return "nil"
	}
}

// collectImports lists the import paths the rendered file needs,
// sorted for deterministic output.
func collectImports(data *templateData) []importSpec {
	seen := map[string]struct{}{
		fieldImport:     {},
		structureImport: {},
	}

	if data.TypedAccessors {
		for _, fd := range data.Fields {
			switch {
			case strings.HasPrefix(fd.GoType, "coerce."):
				seen[coerceImport] = struct{}{}
			case fd.GoType == "decimal.Decimal":
				seen[decimalImport] = struct{}{}
			}
		}
	}

	if data.ZeroLog {
		seen[zerologImport] = struct{}{}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	specs := make([]importSpec, 0, len(paths))
	for _, p := range paths {
		specs = append(specs, importSpec{Path: p})
	}

	return specs
}

// filename derives the output file name from the generated type name.
func filename(typeName string) string {
	return strings.Join(match.TokenizeIdent(typeName), "_") + "_gen.go"
}

// Template for one structure file.

var structureTemplate = template.Must(template.New("structure").Parse(`{{.Header}}

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.VarName}} declares the {{.Name}} structure.
var {{.VarName}} = {{.Decl}}

// {{.TypeName}} is a typed view over one {{.Name}} instance. The zero
// value is not usable; construct values with New{{.TypeName}}.
type {{.TypeName}} struct {
	inst *structure.Instance
}

// New{{.TypeName}} creates an empty {{.Name}} instance.
func New{{.TypeName}}() {{.TypeName}} {
	return {{.TypeName}}{inst: {{.VarName}}.New()}
}
{{if .MustConstructors}}
// New{{.TypeName}}From creates an instance and assigns the given
// attributes, rejecting values their fields cannot coerce.
func New{{.TypeName}}From(values map[string]any) ({{.TypeName}}, error) {
	x := New{{.TypeName}}()

	for name, value := range values {
		if err := x.inst.Set(name, value); err != nil {
			return {{.TypeName}}{}, err
		}
	}

	return x, nil
}

// MustNew{{.TypeName}} is New{{.TypeName}}From panicking on rejected
// values.
func MustNew{{.TypeName}}(values map[string]any) {{.TypeName}} {
	x, err := New{{.TypeName}}From(values)
	if err != nil {
		panic(err)
	}

	return x
}
{{end}}
// Instance returns the untyped instance backing x.
func (x {{.TypeName}}) Instance() *structure.Instance {
	return x.inst
}
{{if .ZeroLog}}
// LogTo writes every set attribute of x to a debug event.
func (x {{.TypeName}}) LogTo(log zerolog.Logger) {
	ev := log.Debug()

	for _, name := range {{.VarName}}.FieldNames() {
		if !x.inst.IsSet(name) {
			continue
		}

		if v, err := x.inst.Get(name); err == nil {
			ev = ev.Interface(name, v)
		}
	}

	ev.Msg("{{.Name}}")
}
{{end}}{{range .Fields}}{{if $.TypedAccessors}}
// {{.Accessor}} returns the "{{.Attr}}" attribute.
{{if .KindLine}}{{.KindLine}}
{{end}}func (x {{$.TypeName}}) {{.Accessor}}() ({{.GoType}}, error) {
	v, err := x.inst.Get("{{.Attr}}")
	if err != nil {
		return {{.Zero}}, err
	}

	return v.({{.GoType}}), nil
}
{{end}}
// Set{{.Accessor}} assigns the "{{.Attr}}" attribute.
func (x {{$.TypeName}}) Set{{.Accessor}}(value any) error {
	return x.inst.Set("{{.Attr}}", value)
}
{{if $.IsSetHelpers}}
// Has{{.Accessor}} reports whether the "{{.Attr}}" attribute is set.
func (x {{$.TypeName}}) Has{{.Accessor}}() bool {
	return x.inst.IsSet("{{.Attr}}")
}
{{end}}{{end}}`))
