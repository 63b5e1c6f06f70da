// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apispect capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apispect/apispect"
	"github.com/apispect/apispect/descriptor"
)

const serverInstructions = `apispect MCP server — parses API descriptors (OpenAPI-style JSON or YAML) and answers endpoint, parameter, request-body, security, and TypeScript code-generation questions about them.

Configuration: All defaults are configurable via APISPECT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- APISPECT_CACHE_FILE_TTL (default: 15m) — cache TTL for local file descriptors
- APISPECT_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched descriptors
- APISPECT_CACHE_ENABLED (default: true) — disable descriptor caching entirely
- APISPECT_MAX_INLINE_SIZE (default: 10485760) — maximum inline content size in bytes
- APISPECT_ALLOW_PRIVATE_IPS (default: false) — allow URL fetches to private/loopback addresses

Caching: Parsed descriptors are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "apispect", Version: apispect.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an API descriptor (OpenAPI-style JSON or YAML). Returns a structural summary: title, API version, declared descriptor version, source format, path/operation/schema counts, security counts, decode warnings, and structure findings. Findings never fail the parse; a result is returned whenever the document decodes.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "endpoints",
		Description: "List every endpoint in an API descriptor as (path, method) pairs with operation ids, summaries, deprecation status, and whether the operation declares its own security requirements. Paths and methods are returned in declaration order.",
	}, handleEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parameters",
		Description: "Resolve the effective parameters of a single operation. Merges the path item's shared parameters with the operation's own (shared first) and partitions them by location: path, query, header, cookie. Requires path and method; the method match is case-insensitive.",
	}, handleParameters)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "request_body",
		Description: "Describe the request body of a single operation: whether one is declared, its required flag, the declared media types in declaration order, and the application/json schema's type and top-level fields. Requires path and method. An operation without a body is a normal result, not an error.",
	}, handleRequestBody)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "interfaces",
		Description: "Generate TypeScript interface declarations from the descriptor's reusable object schemas. Returns the declarations as structured data plus the rendered types.ts content. Non-object schemas are skipped and reported as issues rather than silently dropped.",
	}, handleInterfaces)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "client",
		Description: "Generate a TypeScript HTTP client class with one method per (path, method) pair. Returns the method list plus the rendered client.ts content. Use client_name to override the default ApiClient class name and detect_collisions to surface duplicate method names as issues.",
	}, handleClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "security",
		Description: "Audit operation-level security: declared security schemes, which operations carry their own requirements and which do not, and the coverage ratio. Document-level security defaults are ignored; only requirements declared on the operation itself count as secured.",
	}, handleSecurity)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// truncateText shortens s to at most maxLen runes, appending "..." when
// anything was cut. Summary outputs use this to keep long descriptions from
// swamping tool results.
func truncateText(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// schemaLabel returns a short type label for a schema: the referenced name
// for references, the element label plus "[]" for arrays, and the literal
// type keyword otherwise. A nil schema or an absent type yields "".
func schemaLabel(s *descriptor.Schema) string {
	if s == nil {
		return ""
	}
	if s.Ref != "" {
		return s.RefName()
	}
	if s.Type == "array" {
		if inner := schemaLabel(s.Items); inner != "" {
			return inner + "[]"
		}
		return "array"
	}
	return s.Type
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
