// Package descriptor provides the typed document model for API descriptor
// documents and the parser that loads it.
//
// The parser reads YAML or JSON descriptor sources from local files, remote
// URLs (http:// or https://), readers, or raw bytes, and decodes them into a
// declaration-order-preserving model. Every mapping in the model (paths,
// operations, schema properties, media types, component schemas, security
// schemes) is a sequenced map, so iterating any of them visits entries in the
// order the source document declared them. All downstream tools (indexer,
// resolver, generator, auditor) depend on that ordering.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := descriptor.ParseWithOptions(
//		descriptor.WithFilePath("openapi.yaml"),
//		descriptor.WithValidateStructure(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if len(result.Errors) > 0 {
//		fmt.Printf("Structural issues: %d\n", len(result.Errors))
//	}
//
// Parse from a URL:
//
//	result, err := descriptor.ParseWithOptions(
//		descriptor.WithFilePath("https://example.com/api/openapi.yaml"),
//	)
//
// Or create a reusable Parser instance:
//
//	p := descriptor.New()
//	result1, _ := p.Parse("api1.yaml")
//	result2, _ := p.Parse("https://example.com/api2.yaml")
//
// # The Schema Variant
//
// Schemas are modeled as a closed variant rather than an open property bag.
// Schema.Kind() reports one of four kinds — KindReference, KindObject,
// KindArray, KindScalar — derived from the schema's fields, and consumers
// switch over the kind instead of probing for optional fields:
//
//	switch s.Kind() {
//	case descriptor.KindReference:
//		name := s.RefName()
//	case descriptor.KindObject:
//		for name, prop := range s.Properties.All() { ... }
//	case descriptor.KindArray:
//		elem := s.Items
//	case descriptor.KindScalar:
//		keyword := s.Type
//	}
//
// # Graceful Degradation
//
// The parser treats malformed document fragments as warnings, not failures:
// a path item that is not a mapping, a parameters entry that is not a
// sequence, or an operation that is not a mapping is skipped and reported in
// ParseResult.Warnings. Hard errors are reserved for unreadable or
// undecodable sources (specerrors.ParseError) and exceeded resource limits
// (specerrors.ResourceLimitError).
//
// # Structure Checks
//
// When ValidateStructure is enabled (the default), the parser additionally
// collects basic hygiene findings into ParseResult.Errors without failing the
// parse: path templates that do not begin with '/', parameters missing a name
// or location, and path parameters not marked required.
//
// # Resource Limits
//
// The parser enforces configurable resource limits:
//
//   - MaxFileSize: Maximum source size in bytes (default: 10MB)
//   - MaxNestingDepth: Maximum schema nesting depth (default: 100)
//
// Configure limits using functional options:
//
//	result, err := descriptor.ParseWithOptions(
//		descriptor.WithFilePath("openapi.yaml"),
//		descriptor.WithMaxFileSize(20*1024*1024),
//		descriptor.WithMaxNestingDepth(50),
//	)
//
// # ParseResult Fields
//
// ParseResult includes the Document, the detected SourceFormat (JSON or
// YAML), load timing, source size, document statistics, and any Warnings or
// structural Errors. A parsed Document is read-only: tools never mutate it,
// and it may be shared across goroutines without coordination.
//
// # Related Packages
//
// After parsing, use these packages for analysis and generation:
//   - [github.com/apispect/apispect/indexer] - Flatten paths into an endpoint inventory
//   - [github.com/apispect/apispect/resolver] - Resolve per-operation parameters and bodies
//   - [github.com/apispect/apispect/generator] - Generate TypeScript interfaces and a client
//   - [github.com/apispect/apispect/auditor] - Report security coverage
package descriptor
