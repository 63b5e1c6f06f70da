// Package resolver answers parameter and request-body questions about a
// single (path, method) operation in a descriptor document.
//
// [Parameters] merges the path item's shared parameter list with the
// operation's own (shared entries first, duplicates kept) and partitions the
// merged list into the four transport-location buckets — path, query, header,
// cookie — preserving relative order. Parameters with an unrecognized
// location land in none of the buckets but are retained as unclassified.
//
// [Body] extracts the operation's request-body declaration: the required
// flag, the declared media types in declaration order, and the
// application/json schema when that media type is present. An operation
// without a body yields a zero BodyInfo, not an error.
//
// Both resolvers fail only on lookup: an absent path, or an absent method
// under a present path, returns a [specerrors.NotFoundError] satisfying
// errors.Is(err, specerrors.ErrNotFound). Method lookups are
// case-insensitive.
//
// # Quick Start
//
//	result, _ := descriptor.ParseWithOptions(descriptor.WithFilePath("api.yaml"))
//
//	set, err := resolver.Parameters(result.Document, "/users/{id}", "get")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range set.Path {
//	    fmt.Printf("path parameter: %s\n", p.Name)
//	}
//
//	body, err := resolver.Body(result.Document, "/users", "post")
//	if err == nil && body.Defined {
//	    fmt.Printf("media types: %v\n", body.MediaTypes)
//	}
package resolver
