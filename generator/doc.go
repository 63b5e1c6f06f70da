// Package generator synthesizes TypeScript artifacts from a descriptor
// document: interface declarations for the reusable schemas, and a callable
// client type with one method per operation.
//
// # Quick Start
//
// Generate both artifacts using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("api.yaml"),
//		generator.WithClientName("UsersClient"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./generated"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.ClientName = "UsersClient"
//	result, _ := g.Generate("api.yaml")
//	result.WriteFiles("./generated")
//
// # Interface Synthesis
//
// Every reusable schema with type "object" and a declared properties map
// becomes one interface declaration. Property types resolve by a fixed
// precedence: a $ref yields the referenced schema's name (the final path
// segment of the target), an array yields its element type suffixed with
// "[]", and anything else yields the schema's literal type keyword. A
// property is optional unless its name appears in the schema's required
// list. Schemas that are not objects, or that declare no properties map, are
// skipped without error; a declared-but-empty properties map yields an
// interface with zero fields. Declaration and property order follow the
// source document.
//
// # Client Synthesis
//
// Every (path, method) operation becomes one client method named by the
// lower-cased method token followed by the path's capitalized segments
// ("get" + "/users/{id}" yields getUsersId; template braces are stripped
// before capitalizing). Methods accept a parameter bag, an optional body,
// and a header bag, and forward to a shared request primitive together with
// the literal, unsubstituted path template. The naming scheme is not
// injective: "/users/{id}" and "/users/id" produce the same name.
// WithDetectCollisions surfaces such collisions as generation issues.
//
// # Generated Files
//
//   - types.ts: interface declarations from the reusable-schema section
//   - client.ts: the client class with its request primitive
//
// Both files open with a generated-code header; client.ts additionally
// records the source document's title and version when declared.
package generator
