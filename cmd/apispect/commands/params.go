package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/resolver"
)

// ParamsFlags contains flags for the params command
type ParamsFlags struct {
	Path   string
	Method string
	Quiet  bool
	Format string
}

// SetupParamsFlags creates and configures a FlagSet for the params command.
// Returns the FlagSet and a ParamsFlags struct with bound flag variables.
func SetupParamsFlags() (*flag.FlagSet, *ParamsFlags) {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	flags := &ParamsFlags{}

	fs.StringVar(&flags.Path, "path", "", "path template of the operation (required)")
	fs.StringVar(&flags.Method, "method", "", "HTTP method of the operation (required)")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration for piping")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apispect params --path <template> --method <method> [flags] <file|url|->\n\n")
		Writef(output, "Resolve the effective parameters of one operation: shared path-item\n")
		Writef(output, "parameters first, then the operation's own, partitioned by location.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apispect params --path /users/{id} --method get api.yaml\n")
		Writef(output, "  apispect params --path /users --method post --format json api.yaml\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - The method match is case-insensitive\n")
		Writef(output, "  - An unknown path or method is an error; an operation without\n")
		Writef(output, "    parameters is a normal empty result\n")
	}

	return fs, flags
}

// HandleParams executes the params command
func HandleParams(args []string) error {
	fs, flags := SetupParamsFlags()

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
		return fmt.Errorf("params command requires exactly one file path, URL, or '-' for stdin")
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
		return fmt.Errorf("params: %w", err)
	}

	set, err := resolver.Parameters(result.Document, flags.Path, flags.Method)
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}

	if set.Len() == 0 {
		renderNoResults("parameters", flags.Quiet)
		return nil
	}

	headers := []string{"NAME", "IN", "TYPE", "REQUIRED", "DESCRIPTION"}
	rows := make([][]string, 0, set.Len())
	appendBucket := func(params []*descriptor.Parameter) {
		for _, p := range params {
			required := ""
			if p.Required {
				required = "yes"
			}
			rows = append(rows, []string{
				p.Name,
				p.In,
				typeLabel(p.Schema),
				required,
				p.Description,
			})
		}
	}
	appendBucket(set.Path)
	appendBucket(set.Query)
	appendBucket(set.Header)
	appendBucket(set.Cookie)
	appendBucket(set.Unclassified)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return RenderSummaryStructured(os.Stdout, headers, rows, flags.Format)
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}
