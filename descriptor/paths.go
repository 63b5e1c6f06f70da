package descriptor

import (
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// PathItem describes the operations available on a single path.
//
// The source keys "description" and "parameters" are routed into the typed
// fields below; every other mapping-valued key becomes an entry in
// Operations. The reserved "parameters" key can therefore never surface as a
// method.
type PathItem struct {
	// Description is the shared description applying to every method on this path
	Description string
	// Parameters is the shared parameter list applying to every method on this path
	Parameters []*Parameter
	// Operations maps method tokens (as written in the source, typically
	// lower-case) to operations, in source declaration order
	Operations *sequencedmap.Map[string, *Operation]
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// GetOperation returns the operation for the given method token.
// The lookup is case-insensitive: "GET", "get", and "Get" all match a
// source key "get". Safe to call on a nil PathItem.
func (pi *PathItem) GetOperation(method string) (*Operation, bool) {
	if pi == nil {
		return nil, false
	}
	want := strings.ToLower(method)
	for token, op := range pi.Operations.All() {
		if strings.ToLower(token) == want {
			return op, true
		}
	}
	return nil, false
}

// MethodTokens returns the path's method tokens upper-cased, in source
// declaration order. Safe to call on a nil PathItem.
func (pi *PathItem) MethodTokens() []string {
	if pi == nil || pi.Operations.Len() == 0 {
		return nil
	}
	tokens := make([]string, 0, pi.Operations.Len())
	for token := range pi.Operations.All() {
		tokens = append(tokens, strings.ToUpper(token))
	}
	return tokens
}

// Operation describes a single API operation on a path
type Operation struct {
	Summary     string
	Description string
	OperationID string
	// Parameters is the method-specific parameter list. Merging with the
	// path item's shared list is the resolver's and indexer's job; the model
	// stores the two lists separately as declared.
	Parameters []*Parameter
	// RequestBody is nil when the operation declares no request body
	RequestBody *RequestBody
	// Responses maps status-code-or-"default" keys to responses, in source
	// declaration order. Responses are carried through but opaque: nothing
	// in the toolkit resolves into them.
	Responses *sequencedmap.Map[string, *Response]
	// Security lists operation-level security requirements; empty or nil
	// means the operation is unsecured
	Security   []SecurityRequirement
	Deprecated bool
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// IsSecured reports whether the operation declares a non-empty security
// requirement list of its own. Document-level security is not consulted.
func (op *Operation) IsSecured() bool {
	return op != nil && len(op.Security) > 0
}

// Parameter describes a single operation parameter
type Parameter struct {
	Name string
	// In is the transport location: "path", "query", "header", or "cookie".
	// Unrecognized values are preserved verbatim; classification into the
	// four buckets is the resolver's job, and unrecognized locations land in
	// none of them.
	In          string
	Description string
	Required    bool
	Deprecated  bool
	Schema      *Schema
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// RequestBody describes a single request body
type RequestBody struct {
	Description string
	// Required defaults to false when the source omits it
	Required bool
	// Content maps media-type strings (e.g., "application/json") to their
	// schema containers, in source declaration order
	Content *sequencedmap.Map[string, *MediaType]
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// MediaType provides the schema for one media type of a body
type MediaType struct {
	Schema *Schema
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// Response describes a single response from an API operation
type Response struct {
	Description string
	Content     *sequencedmap.Map[string, *MediaType]
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}
