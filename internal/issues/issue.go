// Package issues provides the shared issue type reported by the tool
// packages.
package issues

import (
	"fmt"

	"github.com/apispect/apispect/internal/severity"
)

// Issue represents a single problem or notice produced while processing a
// descriptor document.
type Issue struct {
	// Path locates the affected field in dotted form
	// (e.g., "paths./users/{id}.get" or "components.schemas.User")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name the issue concerns (optional)
	Field string
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information about the issue (optional)
	Context string
	// Line is the 1-based line number in the source document (0 if unknown)
	Line int
	// Column is the 1-based column number in the source document (0 if unknown)
	Column int
	// File is the source file path (empty for the main document)
	File string
	// OperationContext identifies the operation the issue belongs to.
	// Nil when the issue is not tied to an operation.
	OperationContext *OperationContext
}

// String returns a formatted representation of the issue with a severity
// symbol: "✗" for errors and critical issues, "⚠" for warnings, "ℹ" for
// informational notices.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	where := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		where = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}

	var result string
	if i.Line > 0 {
		result = fmt.Sprintf("%s %s (line %d, col %d): %s", symbol, where, i.Line, i.Column, i.Message)
	} else {
		result = fmt.Sprintf("%s %s: %s", symbol, where, i.Message)
	}

	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}

// Location returns the source location in IDE-friendly form:
// "file:line:column" when the file is known, "line:column" when only the
// line is, and the dotted path otherwise.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue carries source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}
