package issues

import "fmt"

// OperationContext identifies the operation an issue belongs to. Issues
// raised under the path map identify the specific (method, path) pair;
// operationId is preferred when declared because it survives path renames.
type OperationContext struct {
	// Method is the upper-cased method token. Empty for path-level issues.
	Method string
	// Path is the path template (e.g., "/users/{id}")
	Path string
	// OperationID is the declared operationId, when present
	OperationID string
}

// String returns a formatted representation of the operation context, or ""
// when the context is empty.
func (c OperationContext) String() string {
	if c.IsEmpty() {
		return ""
	}

	switch {
	case c.OperationID != "":
		return fmt.Sprintf("(operationId: %s)", c.OperationID)
	case c.Method != "":
		return fmt.Sprintf("(%s %s)", c.Method, c.Path)
	default:
		return fmt.Sprintf("(path: %s)", c.Path)
	}
}

// IsEmpty returns true if the context has no meaningful information.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == ""
}
