package descriptor

import (
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Document is the root of a parsed API descriptor.
//
// Paths and the component sections preserve source declaration order. A
// Document is read-only after parsing: tools construct fresh output values
// and never mutate the model, so a single Document may be shared across
// goroutines without coordination.
type Document struct {
	// OpenAPI is the declared descriptor version string (e.g., "3.0.3").
	// Informational only; the model is version-agnostic.
	OpenAPI string
	// Info holds document metadata (title, version, description)
	Info *Info
	// Paths maps URL-path templates (e.g., "/users/{id}") to path items,
	// in source declaration order
	Paths *sequencedmap.Map[string, *PathItem]
	// Components holds the reusable-schema and security-scheme sections
	Components *Components
	// Security lists document-level security requirements. These are carried
	// for completeness but never consulted by the auditor, which partitions
	// operations on operation-level security only.
	Security []SecurityRequirement
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// Info provides metadata about the API
type Info struct {
	Title       string
	Description string
	Version     string
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// Components holds the reusable sections of a descriptor
type Components struct {
	// Schemas maps schema names to their definitions, in declaration order
	Schemas *sequencedmap.Map[string, *Schema]
	// SecuritySchemes maps scheme names to their declarations, in declaration order
	SecuritySchemes *sequencedmap.Map[string, *SecurityScheme]
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// GetPath returns the path item for the given path template.
// The lookup is exact: path templates are compared byte-for-byte.
// Safe to call on a nil Document.
func (d *Document) GetPath(path string) (*PathItem, bool) {
	if d == nil {
		return nil, false
	}
	return d.Paths.Get(path)
}

// PathCount returns the number of path templates declared in the document.
// Safe to call on a nil Document.
func (d *Document) PathCount() int {
	if d == nil {
		return 0
	}
	return d.Paths.Len()
}

// SchemaCount returns the number of reusable schemas declared in the
// components section. Safe to call on a nil Document.
func (d *Document) SchemaCount() int {
	if d == nil || d.Components == nil {
		return 0
	}
	return d.Components.Schemas.Len()
}

// Title returns the document title, or "" when Info is absent.
func (d *Document) Title() string {
	if d == nil || d.Info == nil {
		return ""
	}
	return d.Info.Title
}

// InfoVersion returns the declared API version from Info, or "" when absent.
func (d *Document) InfoVersion() string {
	if d == nil || d.Info == nil {
		return ""
	}
	return d.Info.Version
}
