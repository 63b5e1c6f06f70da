package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/issues"
)

// InterfaceField is one property of a synthesized interface declaration.
type InterfaceField struct {
	// Name is the property name as declared
	Name string
	// Type is the resolved interface-local type text
	Type string
	// Optional is true unless the property appears in the schema's required
	// list
	Optional bool
}

// InterfaceDecl is one synthesized interface declaration.
type InterfaceDecl struct {
	// Name is the reusable schema's name
	Name string
	// Fields holds the properties in declaration order
	Fields []InterfaceField
}

// Render returns the declaration in its fixed textual shape:
//
//	interface Name {
//	  field: type;
//	  other?: type;
//	}
func (d InterfaceDecl) Render() string {
	var b strings.Builder
	b.WriteString("interface ")
	b.WriteString(d.Name)
	b.WriteString(" {\n")
	for _, f := range d.Fields {
		b.WriteString("  ")
		b.WriteString(f.Name)
		if f.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(f.Type)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// Interfaces synthesizes one declaration per reusable schema whose type is
// "object" and which declares a properties map, in the schema section's
// declaration order. Every other schema is skipped without error. A
// declared-but-empty properties map yields a zero-field declaration rather
// than being omitted.
func Interfaces(doc *descriptor.Document) []InterfaceDecl {
	decls, _ := synthesizeInterfaces(doc)
	return decls
}

// synthesizeInterfaces builds the declarations plus an informational notice
// for every schema the synthesis skips.
func synthesizeInterfaces(doc *descriptor.Document) ([]InterfaceDecl, []GenerateIssue) {
	if doc == nil || doc.Components == nil {
		return nil, nil
	}

	var (
		decls   []InterfaceDecl
		notices []GenerateIssue
	)
	for name, schema := range doc.Components.Schemas.All() {
		if schema.Kind() != descriptor.KindObject {
			notices = append(notices, GenerateIssue{
				Path:     issues.FormatPath("components", "schemas", name),
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("skipped schema %q: interfaces require an object schema, got %s", name, schema.Kind()),
			})
			continue
		}
		if schema.Properties == nil {
			notices = append(notices, GenerateIssue{
				Path:     issues.FormatPath("components", "schemas", name),
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("skipped schema %q: object schema declares no properties map", name),
			})
			continue
		}

		decl := InterfaceDecl{
			Name:   name,
			Fields: make([]InterfaceField, 0, schema.Properties.Len()),
		}
		for prop, propSchema := range schema.Properties.All() {
			decl.Fields = append(decl.Fields, InterfaceField{
				Name:     prop,
				Type:     fieldType(propSchema),
				Optional: !schema.IsRequired(prop),
			})
		}
		decls = append(decls, decl)
	}
	return decls, notices
}

// fieldType resolves a property's interface-local type text by fixed
// precedence: a $ref resolves to the referenced schema's name, an array
// resolves its element the same way and appends "[]", anything else is the
// literal type keyword.
func fieldType(s *descriptor.Schema) string {
	switch s.Kind() {
	case descriptor.KindReference:
		return s.RefName()
	case descriptor.KindArray:
		return elementType(s.Items) + "[]"
	default:
		return literalType(s)
	}
}

// elementType resolves an array's element type: referenced schema name for a
// $ref, literal keyword otherwise.
func elementType(items *descriptor.Schema) string {
	if items.Kind() == descriptor.KindReference {
		return items.RefName()
	}
	return literalType(items)
}

// literalType returns the schema's literal type keyword. A nil schema or an
// absent keyword degrades to "any", the neutral type text.
func literalType(s *descriptor.Schema) string {
	if s == nil || s.Type == "" {
		return "any"
	}
	return s.Type
}

// renderTypesFile assembles the types.ts content: the generated-code header
// followed by each declaration separated by blank lines.
func renderTypesFile(decls []InterfaceDecl) []byte {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by apispect. DO NOT EDIT.\n")
	for _, d := range decls {
		buf.WriteString("\n")
		buf.WriteString(d.Render())
		buf.WriteString("\n")
	}
	return buf.Bytes()
}
