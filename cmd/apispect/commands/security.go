package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apispect/apispect/auditor"
	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/maputil"
)

// SecurityFlags contains flags for the security command
type SecurityFlags struct {
	FailOnUnsecured bool
	Quiet           bool
	Format          string
}

// securitySummary is the structured rendition of a security audit.
type securitySummary struct {
	SchemeTypes    []string           `json:"scheme_types,omitempty" yaml:"scheme_types,omitempty"`
	Schemes        []schemeSummary    `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Secured        []securedSummary   `json:"secured,omitempty" yaml:"secured,omitempty"`
	Unsecured      []operationSummary `json:"unsecured,omitempty" yaml:"unsecured,omitempty"`
	SecuredCount   int                `json:"secured_count" yaml:"secured_count"`
	UnsecuredCount int                `json:"unsecured_count" yaml:"unsecured_count"`
	Coverage       float64            `json:"coverage" yaml:"coverage"`
}

type schemeSummary struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type securedSummary struct {
	Path    string   `json:"path" yaml:"path"`
	Method  string   `json:"method" yaml:"method"`
	Schemes []string `json:"schemes,omitempty" yaml:"schemes,omitempty"`
}

type operationSummary struct {
	Path   string `json:"path" yaml:"path"`
	Method string `json:"method" yaml:"method"`
}

// SetupSecurityFlags creates and configures a FlagSet for the security command.
// Returns the FlagSet and a SecurityFlags struct with bound flag variables.
func SetupSecurityFlags() (*flag.FlagSet, *SecurityFlags) {
	fs := flag.NewFlagSet("security", flag.ContinueOnError)
	flags := &SecurityFlags{}

	fs.BoolVar(&flags.FailOnUnsecured, "fail-on-unsecured", false, "exit with an error when any operation lacks security requirements")
	fs.BoolVar(&flags.Quiet, "q", false, "print only unsecured operations, one per line")
	fs.BoolVar(&flags.Quiet, "quiet", false, "print only unsecured operations, one per line")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apispect security [flags] <file|url|->\n\n")
		Writef(output, "Audit the security declarations of an API descriptor: which schemes are\n")
		Writef(output, "declared and which operations carry their own security requirements.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apispect security api.yaml\n")
		Writef(output, "  apispect security --format json api.yaml | jq '.unsecured'\n")
		Writef(output, "  apispect security --fail-on-unsecured api.yaml\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0  audit completed (and no unsecured operations with --fail-on-unsecured)\n")
		Writef(output, "  1  audit failed, or unsecured operations found with --fail-on-unsecured\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Only an operation's own security list counts; document-level defaults do not\n")
	}

	return fs, flags
}

// HandleSecurity executes the security command
func HandleSecurity(args []string) error {
	fs, flags := SetupSecurityFlags()

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
		return fmt.Errorf("security command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	var report *auditor.Report
	if specPath == StdinFilePath {
		parsed, err := parseSpec(specPath, false)
		if err != nil {
			return fmt.Errorf("security: %w", err)
		}
		report = auditor.Audit(parsed.Document)
	} else {
		result, err := auditor.AuditWithOptions(auditor.WithFilePath(specPath))
		if err != nil {
			return fmt.Errorf("security: %w", err)
		}
		report = result.Report
	}

	summary := buildSecuritySummary(report)

	switch {
	case flags.Format == FormatJSON || flags.Format == FormatYAML:
		if err := RenderDetail(os.Stdout, summary, flags.Format); err != nil {
			return err
		}
	case flags.Quiet:
		for _, op := range summary.Unsecured {
			Writef(os.Stdout, "%s\t%s\n", op.Method, op.Path)
		}
	default:
		renderSecurityText(summary)
	}

	if flags.FailOnUnsecured && report.HasUnsecured() {
		return fmt.Errorf("%d operation(s) lack security requirements", report.UnsecuredCount())
	}
	return nil
}

// buildSecuritySummary flattens an audit report into its rendered form.
// Scheme map iteration is randomized; names are sorted for stable output.
func buildSecuritySummary(report *auditor.Report) securitySummary {
	summary := securitySummary{
		SchemeTypes:    report.SchemeTypes,
		SecuredCount:   report.SecuredCount(),
		UnsecuredCount: report.UnsecuredCount(),
		Coverage:       report.Coverage(),
	}

	for _, name := range maputil.SortedKeys(report.Schemes) {
		detail := report.Schemes[name]
		summary.Schemes = append(summary.Schemes, schemeSummary{
			Name:        name,
			Type:        detail.Type,
			Description: detail.Description,
		})
	}

	for _, op := range report.Secured {
		summary.Secured = append(summary.Secured, securedSummary{
			Path:    op.Path,
			Method:  op.Method,
			Schemes: requirementNames(op.Requirements),
		})
	}
	for _, op := range report.Unsecured {
		summary.Unsecured = append(summary.Unsecured, operationSummary{
			Path:   op.Path,
			Method: op.Method,
		})
	}
	return summary
}

// requirementNames flattens the scheme names of a requirement list. Names
// within each requirement are sorted; the requirement order is preserved.
func requirementNames(reqs []descriptor.SecurityRequirement) []string {
	var names []string
	for _, req := range reqs {
		names = append(names, maputil.SortedKeys(req)...)
	}
	return names
}

// renderSecurityText prints the human-readable audit report to stdout.
func renderSecurityText(summary securitySummary) {
	if len(summary.SchemeTypes) > 0 {
		Writef(os.Stdout, "Scheme Types: %s\n", strings.Join(summary.SchemeTypes, ", "))
	}
	Writef(os.Stdout, "Security Schemes (%d):\n", len(summary.Schemes))
	for _, scheme := range summary.Schemes {
		if scheme.Description != "" {
			Writef(os.Stdout, "  - %s (%s): %s\n", scheme.Name, scheme.Type, scheme.Description)
		} else {
			Writef(os.Stdout, "  - %s (%s)\n", scheme.Name, scheme.Type)
		}
	}

	total := summary.SecuredCount + summary.UnsecuredCount
	Writef(os.Stdout, "\nSecured Operations (%d of %d, %.1f%% coverage):\n",
		summary.SecuredCount, total, summary.Coverage*100)
	for _, op := range summary.Secured {
		Writef(os.Stdout, "  %s %s [%s]\n", op.Method, op.Path, strings.Join(op.Schemes, ", "))
	}

	Writef(os.Stdout, "\nUnsecured Operations (%d):\n", summary.UnsecuredCount)
	for _, op := range summary.Unsecured {
		Writef(os.Stdout, "  %s %s\n", op.Method, op.Path)
	}
}
