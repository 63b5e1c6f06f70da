// Package commands provides CLI command handlers for apispect.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/apispect/apispect"
	"github.com/apispect/apispect/descriptor"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// FormatSpecPath returns a display-friendly path for the descriptor source.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// parseSpec parses a descriptor from a file path, URL, or stdin ("-").
// When validate is false, structure validation findings are not collected.
func parseSpec(specPath string, validate bool) (*descriptor.ParseResult, error) {
	p := descriptor.New()
	p.ValidateStructure = validate

	if specPath == StdinFilePath {
		return p.ParseReader(os.Stdin)
	}
	return p.Parse(specPath)
}

// OutputSpecHeader outputs the common descriptor header to stderr.
// This includes apispect version, source path, and the declared version.
func OutputSpecHeader(specPath, openAPI string) {
	Writef(os.Stderr, "apispect version: %s\n", apispect.Version())
	Writef(os.Stderr, "Descriptor: %s\n", FormatSpecPath(specPath))
	Writef(os.Stderr, "Declared Version: %s\n", openAPI)
}

// OutputSpecStats outputs the common descriptor statistics to stderr.
// This includes source size, path count, operation count, schema count, and load time.
func OutputSpecStats(sourceSize int64, stats descriptor.DocumentStats, loadTime any) {
	Writef(os.Stderr, "Source Size: %s\n", descriptor.FormatBytes(sourceSize))
	Writef(os.Stderr, "Paths: %d\n", stats.PathCount)
	Writef(os.Stderr, "Operations: %d\n", stats.OperationCount)
	Writef(os.Stderr, "Schemas: %d\n", stats.SchemaCount)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}

// declaredVersion returns the document's declared version keyword, if any.
func declaredVersion(doc *descriptor.Document) string {
	if doc == nil {
		return ""
	}
	return doc.OpenAPI
}
