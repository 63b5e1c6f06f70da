// Package indexer flattens a descriptor document's path map into a
// normalized per-path, per-method endpoint inventory.
//
// Every path in the document yields one [Endpoint] record carrying the
// upper-cased method tokens, the shared description and parameter list, and
// one [OperationRecord] per method with the shared parameters already merged
// ahead of the operation's own. The inventory preserves document order
// throughout, so downstream consumers (such as client generation) emit
// deterministic output.
//
// # Quick Start
//
// Index an already parsed document:
//
//	result, _ := descriptor.ParseWithOptions(descriptor.WithFilePath("api.yaml"))
//	inv := indexer.Index(result.Document)
//
//	for path, ep := range inv.All() {
//	    fmt.Printf("%s: %v\n", path, ep.Methods)
//	}
//
// Or parse and index in one call:
//
//	result, err := indexer.IndexWithOptions(
//	    indexer.WithFilePath("api.yaml"),
//	)
//
// Indexing never fails: an empty or absent path map yields an empty
// inventory.
package indexer
