package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apispect/apispect/indexer"
)

// EndpointsFlags contains flags for the endpoints command
type EndpointsFlags struct {
	Method     string
	Path       string
	Deprecated bool
	Quiet      bool
	Format     string
}

// SetupEndpointsFlags creates and configures a FlagSet for the endpoints command.
// Returns the FlagSet and an EndpointsFlags struct with bound flag variables.
func SetupEndpointsFlags() (*flag.FlagSet, *EndpointsFlags) {
	fs := flag.NewFlagSet("endpoints", flag.ContinueOnError)
	flags := &EndpointsFlags{}

	fs.StringVar(&flags.Method, "method", "", "filter by HTTP method (e.g., get, post)")
	fs.StringVar(&flags.Path, "path", "", "filter by path pattern (supports glob with *)")
	fs.BoolVar(&flags.Deprecated, "deprecated", false, "only show deprecated operations")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration for piping")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apispect endpoints [flags] <file|url|->\n\n")
		Writef(output, "List every endpoint declared in an API descriptor as (path, method) pairs.\n")
		Writef(output, "Paths and methods are listed in declaration order.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apispect endpoints api.yaml\n")
		Writef(output, "  apispect endpoints --method get api.yaml\n")
		Writef(output, "  apispect endpoints --path '/users/*' api.yaml\n")
		Writef(output, "  apispect endpoints --deprecated api.yaml\n")
		Writef(output, "  apispect endpoints -q --format json api.yaml | jq\n")
	}

	return fs, flags
}

// HandleEndpoints executes the endpoints command
func HandleEndpoints(args []string) error {
	fs, flags := SetupEndpointsFlags()

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
		return fmt.Errorf("endpoints command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	result, err := parseSpec(specPath, false)
	if err != nil {
		return fmt.Errorf("endpoints: %w", err)
	}

	inv := indexer.Index(result.Document)

	headers := []string{"METHOD", "PATH", "OPERATION", "SUMMARY", "SECURED"}
	var rows [][]string
	for path, ep := range inv.All() {
		for method, rec := range ep.Operations.All() {
			if !matchMethod(method, flags.Method) {
				continue
			}
			if !matchPath(path, flags.Path) {
				continue
			}
			if flags.Deprecated && !rec.Deprecated {
				continue
			}
			secured := ""
			if len(rec.Security) > 0 {
				secured = "yes"
			}
			rows = append(rows, []string{
				strings.ToUpper(method),
				path,
				rec.OperationID,
				rec.Summary,
				secured,
			})
		}
	}

	if len(rows) == 0 {
		renderNoResults("endpoints", flags.Quiet)
		return nil
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return RenderSummaryStructured(os.Stdout, headers, rows, flags.Format)
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}
