// Package apispect provides analysis and TypeScript code generation tools for
// OpenAPI-style API descriptor documents.
//
// apispect parses a descriptor document once into a typed, order-preserving
// model and then offers a set of small, pure tools over it: endpoint
// inventorying, parameter and request-body resolution, TypeScript interface
// and client generation, and security coverage auditing.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - descriptor: Parse a descriptor document into the typed model
//   - indexer: Flatten the path map into a per-path, per-method inventory
//   - resolver: Resolve merged parameters and request bodies for an operation
//   - generator: Generate TypeScript interfaces and an API client
//   - auditor: Partition operations by security coverage
//
// Every tool operates on the same immutable *descriptor.Document, so a
// document parsed once can feed all of them without re-reading the source.
// All document-ordered collections (paths, methods, properties, media types,
// component schemas) preserve source declaration order, and every tool's
// output follows that order.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/apispect/apispect
//
// # Quick Start
//
// Parse a descriptor and index its endpoints:
//
//	import (
//		"github.com/apispect/apispect/descriptor"
//		"github.com/apispect/apispect/indexer"
//	)
//
//	p := descriptor.New()
//	result, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	inv := indexer.Index(result.Document)
//	for path, ep := range inv.All() {
//		fmt.Printf("%s: %v\n", path, ep.Methods)
//	}
//
// Resolve parameters for one operation:
//
//	import "github.com/apispect/apispect/resolver"
//
//	params, err := resolver.Parameters(result.Document, "/users/{id}", "get")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range params.Path {
//		fmt.Printf("path param: %s\n", p.Name)
//	}
//
// Generate TypeScript:
//
//	import "github.com/apispect/apispect/generator"
//
//	g := generator.New()
//	genResult, err := g.GenerateParsed(*result)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = genResult.WriteFiles("./sdk")
//
// # Descriptor Package
//
// The descriptor package defines the typed document model and the Parser that
// loads it from YAML or JSON sources (files, URLs, stdin, or raw bytes).
// Schemas are modeled as a closed variant (object, array, scalar, reference)
// so downstream tools switch over descriptor.SchemaKind instead of probing
// untyped maps.
//
// Key features:
//   - Multi-format support (YAML, JSON) with automatic detection
//   - Declaration-order preservation throughout the model
//   - Structural warnings instead of hard failures for malformed fragments
//   - Document statistics (paths, operations, schemas, secured operations)
//
// # Indexer Package
//
// The indexer package flattens Document.Paths into an Inventory: one record
// per path carrying its upper-cased method tokens, shared parameters, and a
// per-method operation record with merged parameters, request body, responses,
// and security requirements.
//
// # Resolver Package
//
// The resolver package answers per-operation questions. Parameters merges
// path-level and operation-level declarations (path-level first) and
// partitions them by transport location; Body extracts the request body's
// required flag, declared media types, and JSON schema. Lookup failures are
// the only errors: absent paths and methods return a
// specerrors.NotFoundError; every other absence degrades to a neutral value.
//
// # Generator Package
//
// The generator package emits TypeScript source: one interface declaration
// per named object schema in the components section, and one client class
// with a method per (path, method) operation routed through a shared request
// primitive. Output is returned as in-memory files and can be written to a
// directory.
//
// # Auditor Package
//
// The auditor package reports security coverage: the set of declared
// authentication scheme types and the partition of every operation into
// secured and unsecured, based solely on operation-level security
// requirements.
//
// # Common Workflows
//
// Parse once, run everything:
//
//	p := descriptor.New()
//	result, err := p.Parse("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc := result.Document
//
//	inv := indexer.Index(doc)
//	report := auditor.Audit(doc)
//	genResult, err := generator.New().GenerateParsed(*result)
//
// Inspect a single endpoint:
//
//	params, err := resolver.Parameters(doc, "/users/{id}", "GET")
//	if err != nil {
//		var nf *specerrors.NotFoundError
//		if errors.As(err, &nf) {
//			log.Fatalf("no such operation: %s %s", nf.Method, nf.Path)
//		}
//		log.Fatal(err)
//	}
//	body, err := resolver.Body(doc, "/users/{id}", "POST")
//	if err == nil && body.Defined {
//		fmt.Printf("content types: %v\n", body.MediaTypes)
//	}
//
// # Error Handling
//
// All packages follow one error taxonomy, defined in the specerrors package:
//
//   - Lookup failures: resolver calls return *specerrors.NotFoundError,
//     matching errors.Is(err, specerrors.ErrNotFound)
//   - Source failures: the parser returns *specerrors.ParseError for
//     unreadable or undecodable input
//   - Configuration failures: invalid options return *specerrors.ConfigError
//
// Everything else is not an error: missing optional fields produce empty or
// neutral values (empty inventories, zero-field interfaces, nil schemas), so
// callers never branch on errors for ordinary document shapes.
//
// # Concurrency
//
// A parsed Document is read-only and may be shared across goroutines without
// coordination. Tool instances hold only configuration; create one per
// goroutine or share a single instance for read-only use.
//
// # Command-Line Interface
//
// In addition to the library packages, apispect provides a command-line
// interface:
//
//	# Parse and summarize a descriptor
//	apispect parse openapi.yaml
//
//	# List endpoints
//	apispect endpoints openapi.yaml
//
//	# Resolve parameters for one operation
//	apispect params -path /users/{id} -method get openapi.yaml
//
//	# Generate TypeScript into ./sdk
//	apispect generate -o ./sdk openapi.yaml
//
//	# Audit security coverage
//	apispect security openapi.yaml
//
// Install the CLI:
//
//	go install github.com/apispect/apispect/cmd/apispect@latest
//
// The binary also embeds a Model Context Protocol server (apispect mcp) that
// exposes every tool over stdio for editor and agent integrations.
//
// # Additional Resources
//
//   - OpenAPI Specification: https://spec.openapis.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/apispect/apispect
package apispect
