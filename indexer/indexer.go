package indexer

import (
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/apispect/apispect/descriptor"
)

// Indexer flattens descriptor documents into endpoint inventories
type Indexer struct {
	// Logger receives debug output during indexing. No logging when nil.
	Logger descriptor.Logger
}

// New creates a new Indexer instance with default settings
func New() *Indexer {
	return &Indexer{}
}

// Index flattens doc's path map into an inventory using default settings.
// It is the package-level convenience form of [Indexer.Index].
func Index(doc *descriptor.Document) *Inventory {
	return New().Index(doc)
}

// Index flattens doc's path map into a per-path, per-method inventory.
//
// Every path yields exactly one endpoint record listing its method tokens
// upper-cased in declaration order; every method yields exactly one operation
// record with the shared parameter list merged ahead of the operation's own.
// An empty or absent path map yields an empty inventory; there is no failure
// path.
func (ix *Indexer) Index(doc *descriptor.Document) *Inventory {
	inv := &Inventory{Endpoints: sequencedmap.New[string, *Endpoint]()}
	if doc == nil || doc.Paths.Len() == 0 {
		return inv
	}

	for path, item := range doc.Paths.All() {
		ep := &Endpoint{
			Path:        path,
			Description: item.Description,
			Methods:     item.MethodTokens(),
			Parameters:  item.Parameters,
			Operations:  sequencedmap.New[string, *OperationRecord](),
		}
		for token, op := range item.Operations.All() {
			method := strings.ToUpper(token)
			if ep.Operations.Has(method) {
				// Tokens differing only in case collapse to one record;
				// the first declaration wins.
				continue
			}
			ep.Operations.Set(method, &OperationRecord{
				Method:      method,
				Summary:     op.Summary,
				Description: op.Description,
				OperationID: op.OperationID,
				Parameters:  mergeParameters(item.Parameters, op.Parameters),
				RequestBody: op.RequestBody,
				Responses:   op.Responses,
				Security:    op.Security,
				Deprecated:  op.Deprecated,
			})
		}
		inv.Endpoints.Set(path, ep)
	}

	ix.log().Debug("indexed descriptor document",
		"paths", inv.Len(),
		"operations", inv.EndpointCount())
	return inv
}

// mergeParameters concatenates the shared and operation parameter lists,
// shared entries first. Order within each list is preserved and duplicate
// names are kept.
func mergeParameters(shared, own []*descriptor.Parameter) []*descriptor.Parameter {
	if len(shared) == 0 && len(own) == 0 {
		return nil
	}
	merged := make([]*descriptor.Parameter, 0, len(shared)+len(own))
	merged = append(merged, shared...)
	merged = append(merged, own...)
	return merged
}

func (ix *Indexer) log() descriptor.Logger {
	if ix.Logger != nil {
		return ix.Logger
	}
	return descriptor.NopLogger{}
}
