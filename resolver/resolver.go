package resolver

import (
	"strings"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/specerrors"
)

// Resolver resolves parameters and request bodies for individual operations
// in a descriptor document.
type Resolver struct {
	// Logger receives debug output during resolution. No logging when nil.
	Logger descriptor.Logger
}

// New creates a new Resolver instance with default settings
func New() *Resolver {
	return &Resolver{}
}

// lookup finds the path item and operation for (path, method). Method
// comparison is case-insensitive. An absent path, or an absent method under a
// present path, returns a NotFoundError; the two cases are distinguished by
// the error's Method field, which is empty when the path itself was missing.
func lookup(doc *descriptor.Document, path, method string) (*descriptor.PathItem, *descriptor.Operation, error) {
	item, ok := doc.GetPath(path)
	if !ok {
		return nil, nil, &specerrors.NotFoundError{
			Path:    path,
			Message: "path not declared in document",
		}
	}
	op, ok := item.GetOperation(method)
	if !ok {
		return nil, nil, &specerrors.NotFoundError{
			Path:    path,
			Method:  strings.ToLower(method),
			Message: "method not declared for path",
		}
	}
	return item, op, nil
}

// log returns the configured logger or a no-op fallback
func (r *Resolver) log() descriptor.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return descriptor.NopLogger{}
}
