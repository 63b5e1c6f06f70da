package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/apispect/apispect/descriptor"
)

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		// Print header
		for i, h := range headers {
			if i > 0 {
				_, _ = fmt.Fprint(w, "  ")
			}
			_, _ = fmt.Fprintf(w, "%-*s", widths[i], h)
		}
		_, _ = fmt.Fprintln(w)
	}

	// Print rows
	for _, row := range rows {
		for i, cell := range row {
			if quiet {
				if i > 0 {
					_, _ = fmt.Fprint(w, "\t")
				}
				_, _ = fmt.Fprint(w, cell)
			} else {
				if i > 0 {
					_, _ = fmt.Fprint(w, "  ")
				}
				_, _ = fmt.Fprintf(w, "%-*s", widths[i], cell)
			}
		}
		_, _ = fmt.Fprintln(w)
	}
}

// RenderSummaryStructured renders summary table data as structured output (JSON or YAML).
// It converts header+row pairs into []map[string]string with lowercase keys.
func RenderSummaryStructured(w io.Writer, headers []string, rows [][]string, format string) error {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			rec[strings.ToLower(h)] = val
		}
		records = append(records, rec)
	}
	return RenderDetail(w, records, format)
}

// RenderDetail renders a single node in the specified format (JSON, YAML, or text).
func RenderDetail(w io.Writer, node any, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(node, "", "  ")
	case FormatYAML, FormatText:
		data, err = yaml.Marshal(node)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// renderNoResults prints an informative message when no results match the filters.
func renderNoResults(nodeType string, quiet bool) {
	if !quiet {
		Writef(os.Stderr, "No %s matched the given filters.\n", nodeType)
	}
}

// matchPath checks if a path template matches a pattern.
// Supports simple glob matching where * matches exactly one path segment
// (e.g., /pets/* matches /pets/123 but not /pets/123/details).
func matchPath(pathTemplate, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.Contains(pattern, "*") {
		patternParts := strings.Split(pattern, "/")
		pathParts := strings.Split(pathTemplate, "/")
		if len(patternParts) != len(pathParts) {
			return false
		}
		for i, pp := range patternParts {
			if pp == "*" {
				continue
			}
			if pp != pathParts[i] {
				return false
			}
		}
		return true
	}
	return pathTemplate == pattern
}

// matchMethod checks if a method token matches the filter, case-insensitively.
func matchMethod(method, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.EqualFold(method, filter)
}

// typeLabel returns a short display label for a schema: the referenced name
// for references, the element label plus "[]" for arrays, the literal type
// keyword otherwise.
func typeLabel(s *descriptor.Schema) string {
	if s == nil {
		return ""
	}
	if s.Ref != "" {
		return s.RefName()
	}
	if s.Type == "array" {
		if inner := typeLabel(s.Items); inner != "" {
			return inner + "[]"
		}
		return "array"
	}
	return s.Type
}
