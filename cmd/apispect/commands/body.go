package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apispect/apispect/resolver"
)

// BodyFlags contains flags for the body command
type BodyFlags struct {
	Path   string
	Method string
	Quiet  bool
	Format string
}

// bodySummary is the structured rendition of a resolved request body.
type bodySummary struct {
	Path       string             `json:"path" yaml:"path"`
	Method     string             `json:"method" yaml:"method"`
	Defined    bool               `json:"defined" yaml:"defined"`
	Required   bool               `json:"required" yaml:"required"`
	MediaTypes []string           `json:"media_types,omitempty" yaml:"media_types,omitempty"`
	SchemaType string             `json:"schema_type,omitempty" yaml:"schema_type,omitempty"`
	Fields     []bodyFieldSummary `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// bodyFieldSummary is one top-level field of the application/json schema.
type bodyFieldSummary struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Required bool   `json:"required" yaml:"required"`
}

// SetupBodyFlags creates and configures a FlagSet for the body command.
// Returns the FlagSet and a BodyFlags struct with bound flag variables.
func SetupBodyFlags() (*flag.FlagSet, *BodyFlags) {
	fs := flag.NewFlagSet("body", flag.ContinueOnError)
	flags := &BodyFlags{}

	fs.StringVar(&flags.Path, "path", "", "path template of the operation (required)")
	fs.StringVar(&flags.Method, "method", "", "HTTP method of the operation (required)")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration for piping")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apispect body --path <template> --method <method> [flags] <file|url|->\n\n")
		Writef(output, "Describe the request body of one operation: whether one is declared,\n")
		Writef(output, "its required flag, the declared media types, and the application/json\n")
		Writef(output, "schema's top-level fields.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apispect body --path /users --method post api.yaml\n")
		Writef(output, "  apispect body --path /users --method post --format json api.yaml | jq\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - An operation without a request body is a normal result, not an error\n")
	}

	return fs, flags
}

// HandleBody executes the body command
func HandleBody(args []string) error {
	fs, flags := SetupBodyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("body command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	if flags.Path == "" {
		fs.Usage()
		return fmt.Errorf("--path is required")
	}
	if flags.Method == "" {
		fs.Usage()
		return fmt.Errorf("--method is required")
	}

	result, err := parseSpec(specPath, false)
	if err != nil {
		return fmt.Errorf("body: %w", err)
	}

	info, err := resolver.Body(result.Document, flags.Path, flags.Method)
	if err != nil {
		return fmt.Errorf("body: %w", err)
	}

	summary := bodySummary{
		Path:       flags.Path,
		Method:     strings.ToUpper(flags.Method),
		Defined:    info.Defined,
		Required:   info.Required,
		MediaTypes: info.MediaTypes,
		SchemaType: typeLabel(info.Schema),
	}
	if info.Schema != nil && info.Schema.Properties != nil {
		for name, prop := range info.Schema.Properties.All() {
			summary.Fields = append(summary.Fields, bodyFieldSummary{
				Name:     name,
				Type:     typeLabel(prop),
				Required: info.Schema.IsRequired(name),
			})
		}
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return RenderDetail(os.Stdout, summary, flags.Format)
	}

	if !summary.Defined {
		if !flags.Quiet {
			Writef(os.Stdout, "%s %s declares no request body.\n", summary.Method, summary.Path)
		}
		return nil
	}

	if !flags.Quiet {
		Writef(os.Stdout, "Request body for %s %s:\n", summary.Method, summary.Path)
	}
	required := "no"
	if summary.Required {
		required = "yes"
	}
	Writef(os.Stdout, "Required: %s\n", required)
	Writef(os.Stdout, "Media Types: %s\n", strings.Join(summary.MediaTypes, ", "))
	if summary.SchemaType != "" {
		Writef(os.Stdout, "Schema: %s\n", summary.SchemaType)
	}
	if len(summary.Fields) > 0 {
		Writef(os.Stdout, "\n")
		headers := []string{"FIELD", "TYPE", "REQUIRED"}
		rows := make([][]string, 0, len(summary.Fields))
		for _, f := range summary.Fields {
			req := ""
			if f.Required {
				req = "yes"
			}
			rows = append(rows, []string{f.Name, f.Type, req})
		}
		RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	}
	return nil
}
