package indexer

import (
	"iter"
	"slices"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/apispect/apispect/descriptor"
)

// Endpoint is the flattened record for a single path template.
type Endpoint struct {
	// Path is the URL-path template as declared (e.g., "/users/{id}")
	Path string
	// Description is the shared description applying to every method on this path
	Description string
	// Methods lists the path's method tokens upper-cased, in declaration order
	Methods []string
	// Parameters is the path's shared parameter list
	Parameters []*descriptor.Parameter
	// Operations maps upper-cased method tokens to operation records, in
	// declaration order
	Operations *sequencedmap.Map[string, *OperationRecord]
}

// GetOperation returns the operation record for the given method token.
// The lookup is case-insensitive. Safe to call on a nil Endpoint.
func (e *Endpoint) GetOperation(method string) (*OperationRecord, bool) {
	if e == nil {
		return nil, false
	}
	return e.Operations.Get(strings.ToUpper(method))
}

// OperationRecord is the per-method view of an endpoint with the shared
// parameter list already merged in.
type OperationRecord struct {
	// Method is the upper-cased method token
	Method      string
	Summary     string
	Description string
	OperationID string
	// Parameters is the merged parameter list: shared entries first, then the
	// operation's own. Order within each list is preserved and duplicate
	// names are kept.
	Parameters []*descriptor.Parameter
	// RequestBody is nil when the operation declares none
	RequestBody *descriptor.RequestBody
	// Responses carries the operation's response map through unresolved
	Responses *sequencedmap.Map[string, *descriptor.Response]
	// Security is the operation's own requirement list; document-level
	// security is not folded in
	Security   []descriptor.SecurityRequirement
	Deprecated bool
}

// Inventory is the result of indexing a descriptor document: one endpoint
// record per path, in document order.
type Inventory struct {
	// Endpoints maps path templates to endpoint records, in document order
	Endpoints *sequencedmap.Map[string, *Endpoint]
}

// Get returns the endpoint record for a path template. The lookup is exact.
// Safe to call on a nil Inventory.
func (inv *Inventory) Get(path string) (*Endpoint, bool) {
	if inv == nil {
		return nil, false
	}
	return inv.Endpoints.Get(path)
}

// Paths returns the indexed path templates in document order.
// Safe to call on a nil Inventory.
func (inv *Inventory) Paths() []string {
	if inv == nil || inv.Endpoints.Len() == 0 {
		return nil
	}
	return slices.Collect(inv.Endpoints.Keys())
}

// All iterates the endpoint records in document order.
// Safe to call on a nil Inventory.
func (inv *Inventory) All() iter.Seq2[string, *Endpoint] {
	if inv == nil {
		return func(func(string, *Endpoint) bool) {}
	}
	return inv.Endpoints.All()
}

// Len returns the number of indexed paths. Safe to call on a nil Inventory.
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return inv.Endpoints.Len()
}

// EndpointCount returns the total number of (path, method) pairs in the
// inventory. Safe to call on a nil Inventory.
func (inv *Inventory) EndpointCount() int {
	if inv == nil {
		return 0
	}
	count := 0
	for _, ep := range inv.Endpoints.All() {
		count += ep.Operations.Len()
	}
	return count
}
