package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"xcm-generator/internal/common"
	"xcm-generator/internal/log"
	"xcm-generator/internal/shape"
)

// ErrUsage is returned when a component is invoked with input.
var ErrUsage = errors.New("no arguments expected")

// GeneratorConfig holds configuration for code generation. None of it
// changes which conversions are emitted.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// LocationFile is the file name of the Location conversions.
	LocationFile string
	// JunctionsFile is the file name of the Junctions conversions.
	JunctionsFile string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
	// Previous is the package of the previous protocol version.
	Previous PreviousVersion
}

// PreviousVersion names the package migrated from.
type PreviousVersion struct {
	// Alias is the import name, e.g. "v4". It also names the migration
	// functions: JunctionsFromV4 built on JunctionFromV4.
	Alias string
	// Path is the import path.
	Path string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "v5",
		OutputDir:        ".",
		LocationFile:     "location_conversions.go",
		JunctionsFile:    "junctions_conversions.go",
		GenerateComments: true,
		Previous: PreviousVersion{
			Alias: "v4",
			Path:  "xcm-generator/xcm/v4",
		},
	}
}

// Generator renders the conversion components.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "location_conversions.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Functions is the number of functions in the file.
	Functions int
}

// Location generates the conversions into Location.
func (g *Generator) Location(input ...string) (*GeneratedFile, error) {
	if !common.IsEmpty(input) {
		return nil, fmt.Errorf("location: %w, got %q", ErrUsage, input)
	}

	shapes := shape.LocationShapes(shape.MaxArity, shape.MaxArity)
	if diags := shape.Validate(shapes); diags.HasErrors() {
		return nil, fmt.Errorf("location: %w", diags.Error())
	}

	data := g.newFileData(g.config.LocationFile)
	for _, s := range shapes {
		data.Conversions = append(data.Conversions, locationConversion(s))
	}

	return g.render("location", data)
}

// Junctions generates the tuple conversions into Junctions and the migration
// from the previous version.
func (g *Generator) Junctions(input ...string) (*GeneratedFile, error) {
	if !common.IsEmpty(input) {
		return nil, fmt.Errorf("junctions: %w, got %q", ErrUsage, input)
	}

	if g.config.Previous.Path == "" {
		return nil, errors.New("junctions: previous version import path is empty")
	}

	shapes := shape.JunctionsShapes(shape.MaxArity)
	if diags := shape.Validate(shapes); diags.HasErrors() {
		return nil, fmt.Errorf("junctions: %w", diags.Error())
	}

	data := g.newFileData(g.config.JunctionsFile)
	for _, s := range shapes {
		data.Conversions = append(data.Conversions, junctionsConversion(s))
	}

	alias := g.config.Previous.Alias
	if alias == "" {
		alias = common.PkgAlias(g.config.Previous.Path)
	}

	data.Imports = append(data.Imports, importSpec{Alias: alias, Path: g.config.Previous.Path})
	data.Migration = buildMigration(alias, shape.MaxArity)

	return g.render("junctions", data)
}

// All generates both components, Location first.
func (g *Generator) All(input ...string) ([]GeneratedFile, error) {
	if !common.IsEmpty(input) {
		return nil, fmt.Errorf("%w, got %q", ErrUsage, input)
	}

	location, err := g.Location()
	if err != nil {
		return nil, err
	}

	junctions, err := g.Junctions()
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{*location, *junctions}, nil
}

func (g *Generator) newFileData(filename string) *templateData {
	return &templateData{
		PackageName:      g.config.PackageName,
		Filename:         filename,
		GenerateComments: g.config.GenerateComments,
	}
}

// render executes the file template and formats the result.
func (g *Generator) render(component string, data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%s: executing template: %w", component, err)
	}

	functions := len(data.Conversions)
	if data.Migration != nil {
		functions++
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename:  data.Filename,
			Content:   buf.Bytes(),
			Functions: functions,
		}, fmt.Errorf("%s: formatting code: %w (unformatted code returned)", component, err)
	}

	log.Debug("generated conversions",
		"component", component, "file", data.Filename, "functions", functions, "bytes", len(formatted))

	return &GeneratedFile{
		Filename:  data.Filename,
		Content:   formatted,
		Functions: functions,
	}, nil
}

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	GenerateComments bool
	Conversions      []conversionData
	Migration        *migrationData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// conversionData is a single infallible conversion function.
type conversionData struct {
	Name      string
	Signature string
	Params    string
	Result    string
	Body      string
}

// migrationData is the fallible conversion from the previous version.
type migrationData struct {
	Name        string
	Alias       string
	ElementFunc string
	Variants    []migrationVariant
}

// migrationVariant converts one length-tagged variant.
type migrationVariant struct {
	Len      int
	Elements []int
	Result   string
}

var fileTemplate = template.Must(template.New("conversions").Parse(`// Code generated by xcm-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}{{range .Conversions}}
{{if $.GenerateComments}}// {{.Name}} converts {{.Signature}} into {{.Result}}.
{{end}}func {{.Name}}({{.Params}}) {{.Result}} {
	return {{.Body}}
}
{{end}}{{with .Migration}}
{{if $.GenerateComments}}// {{.Name}} converts {{.Alias}} junctions into the current version. Junctions
// are converted in order and the first failure aborts the migration; no
// partially migrated value is returned.
{{end}}func {{.Name}}(old {{.Alias}}.Junctions) (Junctions, error) {
	switch old := old.(type) {
	case nil, {{.Alias}}.Here:
		return Here{}, nil
{{range .Variants}}	case {{$.Migration.Alias}}.X{{.Len}}:
		if old == ({{$.Migration.Alias}}.X{{.Len}}{}) {
			return nil, zeroJunctions(old)
		}

{{range .Elements}}		j{{.}}, err := {{$.Migration.ElementFunc}}(old.At({{.}}))
		if err != nil {
			return nil, &MigrationError{Index: {{.}}, Err: err}
		}
{{end}}
		return {{.Result}}, nil
{{end}}	}

	return nil, unknownJunctions(old)
}
{{end}}`))

// versionSuffix turns an import alias into an identifier suffix: "v4" -> "V4".
func versionSuffix(alias string) string {
	if alias == "" {
		return ""
	}

	return strings.ToUpper(alias[:1]) + alias[1:]
}
