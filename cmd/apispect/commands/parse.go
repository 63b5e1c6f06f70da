package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	NoValidate bool
	Quiet      bool
	Format     string
}

// parseSummary is the structured rendition of a parse result.
type parseSummary struct {
	Source            string   `json:"source" yaml:"source"`
	Format            string   `json:"format" yaml:"format"`
	OpenAPI           string   `json:"openapi,omitempty" yaml:"openapi,omitempty"`
	Title             string   `json:"title,omitempty" yaml:"title,omitempty"`
	Version           string   `json:"version,omitempty" yaml:"version,omitempty"`
	Paths             int      `json:"path_count" yaml:"path_count"`
	Operations        int      `json:"operation_count" yaml:"operation_count"`
	Schemas           int      `json:"schema_count" yaml:"schema_count"`
	SecuritySchemes   int      `json:"security_scheme_count" yaml:"security_scheme_count"`
	SecuredOperations int      `json:"secured_operation_count" yaml:"secured_operation_count"`
	Warnings          []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Findings          []string `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.NoValidate, "no-validate", false, "skip structure validation findings")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apispect parse [flags] <file|url|->\n\n")
		Writef(output, "Parse an API descriptor and report its structure.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apispect parse api.yaml\n")
		Writef(output, "  apispect parse https://example.com/api.yaml\n")
		Writef(output, "  apispect parse --format json api.yaml | jq '.operation_count'\n")
		Writef(output, "  cat api.yaml | apispect parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed or structure findings were collected\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	result, err := parseSpec(specPath, !flags.NoValidate)
	if err != nil {
		return fmt.Errorf("parsing descriptor: %w", err)
	}

	summary := parseSummary{
		Source:            FormatSpecPath(specPath),
		Format:            string(result.SourceFormat),
		Paths:             result.Stats.PathCount,
		Operations:        result.Stats.OperationCount,
		Schemas:           result.Stats.SchemaCount,
		SecuritySchemes:   result.Stats.SecuritySchemeCount,
		SecuredOperations: result.Stats.SecuredOperationCount,
		Warnings:          result.Warnings,
	}
	summary.OpenAPI = declaredVersion(result.Document)
	if doc := result.Document; doc != nil && doc.Info != nil {
		summary.Title = doc.Info.Title
		summary.Version = doc.Info.Version
	}
	for _, finding := range result.Errors {
		summary.Findings = append(summary.Findings, finding.Error())
	}

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(summary, flags.Format); err != nil {
			return err
		}
		if len(summary.Findings) > 0 {
			return fmt.Errorf("descriptor has %d structure finding(s)", len(summary.Findings))
		}
		return nil
	}

	// Text format output (diagnostics to stderr to keep stdout clean)
	if !flags.Quiet {
		Writef(os.Stderr, "API Descriptor Parser\n")
		Writef(os.Stderr, "=====================\n\n")
		OutputSpecHeader(specPath, summary.OpenAPI)
		OutputSpecStats(result.SourceSize, result.Stats, result.LoadTime)
		Writef(os.Stderr, "Security Schemes: %d\n", result.Stats.SecuritySchemeCount)
		Writef(os.Stderr, "Secured Operations: %d\n", result.Stats.SecuredOperationCount)
		Writef(os.Stderr, "\n")

		if summary.Title != "" || summary.Version != "" {
			Writef(os.Stderr, "Title: %s\n", summary.Title)
			Writef(os.Stderr, "Version: %s\n", summary.Version)
			Writef(os.Stderr, "\n")
		}

		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", len(result.Warnings))
			for _, warning := range result.Warnings {
				Writef(os.Stderr, "  - %s\n", warning)
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Always print findings to stderr, even in quiet mode
	if len(summary.Findings) > 0 {
		Writef(os.Stderr, "Structure Findings (%d):\n", len(summary.Findings))
		for _, finding := range summary.Findings {
			Writef(os.Stderr, "  - %s\n", finding)
		}
		Writef(os.Stderr, "\n")
		return fmt.Errorf("descriptor has %d structure finding(s)", len(summary.Findings))
	}

	if !flags.Quiet {
		Writef(os.Stderr, "✓ Parse successful\n")
	}
	return nil
}
