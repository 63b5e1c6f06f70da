package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/indexer"
)

// ClientMethod is one synthesized client method.
type ClientMethod struct {
	// Name is the derived method name (e.g. "getUsersId")
	Name string
	// Method is the upper-cased method token forwarded to the request
	// primitive
	Method string
	// Path is the literal path template. The generated client never
	// substitutes template placeholders; that is left to its caller.
	Path string
}

// ClientMethods derives one method per (path, method) pair in the inventory,
// in inventory order.
func ClientMethods(inv *indexer.Inventory) []ClientMethod {
	if inv == nil {
		return nil
	}

	var methods []ClientMethod
	for path, ep := range inv.All() {
		for method := range ep.Operations.Keys() {
			methods = append(methods, ClientMethod{
				Name:   clientMethodName(method, path),
				Method: method,
				Path:   path,
			})
		}
	}
	return methods
}

// Client renders the client definition for the inventory with default
// settings. It is the package-level convenience form of the client half of
// [Generator.GenerateParsed].
func Client(inv *indexer.Inventory) []byte {
	return renderClientFile("ApiClient", "", ClientMethods(inv))
}

// sourceLabel condenses the document's title and version into the header
// annotation, empty when neither is declared.
func sourceLabel(info *descriptor.Info) string {
	if info == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(info.Title) + " " + strings.TrimSpace(info.Version))
}

// renderClientFile assembles the client.ts content: a class with the
// configured name holding the base address and default headers, a shared
// request primitive, and one forwarding method per operation.
func renderClientFile(clientName, source string, methods []ClientMethod) []byte {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by apispect. DO NOT EDIT.\n")
	if source != "" {
		buf.WriteString(fmt.Sprintf("// Source: %s\n", source))
	}
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("export class %s {\n", clientName))
	buf.WriteString("  baseUrl: string;\n")
	buf.WriteString("  defaultHeaders: Record<string, string>;\n\n")

	buf.WriteString("  constructor(baseUrl: string, defaultHeaders: Record<string, string> = {}) {\n")
	buf.WriteString("    this.baseUrl = baseUrl;\n")
	buf.WriteString("    this.defaultHeaders = defaultHeaders;\n")
	buf.WriteString("  }\n\n")

	buf.WriteString("  async request(method: string, path: string, params: Record<string, unknown> = {}, body?: unknown, headers: Record<string, string> = {}): Promise<Response> {\n")
	buf.WriteString("    const url = new URL(this.baseUrl + path);\n")
	buf.WriteString("    for (const [name, value] of Object.entries(params)) {\n")
	buf.WriteString("      url.searchParams.append(name, String(value));\n")
	buf.WriteString("    }\n")
	buf.WriteString("    const init: RequestInit = {\n")
	buf.WriteString("      method,\n")
	buf.WriteString("      headers: { ...this.defaultHeaders, ...headers },\n")
	buf.WriteString("    };\n")
	buf.WriteString("    if (body !== undefined) {\n")
	buf.WriteString("      init.body = JSON.stringify(body);\n")
	buf.WriteString("    }\n")
	buf.WriteString("    return fetch(url.toString(), init);\n")
	buf.WriteString("  }\n")

	for _, m := range methods {
		buf.WriteString("\n")
		buf.WriteString(fmt.Sprintf("  %s(params: Record<string, unknown> = {}, body?: unknown, headers: Record<string, string> = {}): Promise<Response> {\n", m.Name))
		buf.WriteString(fmt.Sprintf("    return this.request(%q, %q, params, body, headers);\n", m.Method, m.Path))
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}
