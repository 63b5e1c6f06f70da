package descriptor

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"go.yaml.in/yaml/v4"
)

// decoder converts a parsed YAML node tree into the descriptor model.
// Mapping order from the source document is preserved throughout. Problems
// that do not prevent decoding are collected as warnings rather than errors.
type decoder struct {
	warnings []string
	maxDepth int
}

func newDecoder(maxDepth int) *decoder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxNestingDepth
	}
	return &decoder{maxDepth: maxDepth}
}

func (d *decoder) warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// putOnce inserts value under keyNode's key unless the key is already
// present. Duplicate keys keep their first value and produce a warning.
func putOnce[V any](d *decoder, m *sequencedmap.Map[string, V], keyNode *yaml.Node, value V, what string) {
	key := keyNode.Value
	if m.Has(key) {
		d.warnf("duplicate %s %q at line %d ignored; first occurrence wins", what, key, keyNode.Line)
		return
	}
	m.Set(key, value)
}

// extraField records an extension or unrecognized key on the owning object.
func extraField(extra *map[string]any, key string, value *yaml.Node) {
	if *extra == nil {
		*extra = make(map[string]any)
	}
	if _, ok := (*extra)[key]; ok {
		return
	}
	(*extra)[key] = nodeAny(value)
}

// document decodes the root node of a source document.
func (d *decoder) document(root *yaml.Node) (*Document, error) {
	if root != nil && root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("empty document")
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root == nil || root.Kind == 0 {
		return nil, errors.New("empty document")
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root must be a mapping, got %s", nodeKindString(root))
	}

	doc := &Document{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]
		switch keyNode.Value {
		case "openapi":
			doc.OpenAPI = nodeString(valNode)
		case "info":
			doc.Info = d.info(valNode)
		case "paths":
			doc.Paths = d.paths(valNode)
		case "components":
			doc.Components = d.components(valNode)
		case "security":
			doc.Security = d.securityRequirements(valNode)
		default:
			extraField(&doc.Extra, keyNode.Value, valNode)
		}
	}
	return doc, nil
}

func (d *decoder) info(node *yaml.Node) *Info {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	info := &Info{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "title":
			info.Title = nodeString(valNode)
		case "description":
			info.Description = nodeString(valNode)
		case "version":
			info.Version = nodeString(valNode)
		default:
			extraField(&info.Extra, keyNode.Value, valNode)
		}
	}
	return info
}

func (d *decoder) paths(node *yaml.Node) *sequencedmap.Map[string, *PathItem] {
	node = resolveAlias(node)
	paths := sequencedmap.New[string, *PathItem]()
	if !isMapping(node) {
		return paths
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		item := d.pathItem(valNode)
		if item == nil {
			d.warnf("path %q at line %d is not a mapping, ignoring", keyNode.Value, keyNode.Line)
			continue
		}
		putOnce(d, paths, keyNode, item, "path")
	}
	return paths
}

// pathItem decodes one path entry. The keys "description" and "parameters"
// are reserved for the shared description and parameter list; every other
// mapping-valued key is an HTTP method. Remaining keys land in Extra.
func (d *decoder) pathItem(node *yaml.Node) *PathItem {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	item := &PathItem{Operations: sequencedmap.New[string, *Operation]()}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		key := keyNode.Value
		switch {
		case key == pathItemKeyDescription:
			item.Description = nodeString(valNode)
		case key == pathItemKeyParameters:
			item.Parameters = d.parameters(valNode)
		case isExtensionKey(key):
			extraField(&item.Extra, key, valNode)
		case isMapping(valNode):
			putOnce(d, item.Operations, keyNode, d.operation(valNode), "method")
		default:
			extraField(&item.Extra, key, valNode)
		}
	}
	return item
}

func (d *decoder) operation(node *yaml.Node) *Operation {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	op := &Operation{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "summary":
			op.Summary = nodeString(valNode)
		case "description":
			op.Description = nodeString(valNode)
		case "operationId":
			op.OperationID = nodeString(valNode)
		case "parameters":
			op.Parameters = d.parameters(valNode)
		case "requestBody":
			op.RequestBody = d.requestBody(valNode)
		case "responses":
			op.Responses = d.responses(valNode)
		case "security":
			op.Security = d.securityRequirements(valNode)
		case "deprecated":
			op.Deprecated = nodeBool(valNode)
		default:
			extraField(&op.Extra, keyNode.Value, valNode)
		}
	}
	return op
}

func (d *decoder) parameters(node *yaml.Node) []*Parameter {
	node = resolveAlias(node)
	if !isSequence(node) {
		return nil
	}
	params := make([]*Parameter, 0, len(node.Content))
	for _, item := range node.Content {
		if p := d.parameter(item); p != nil {
			params = append(params, p)
		}
	}
	return params
}

func (d *decoder) parameter(node *yaml.Node) *Parameter {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	param := &Parameter{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "name":
			param.Name = nodeString(valNode)
		case "in":
			param.In = nodeString(valNode)
		case "description":
			param.Description = nodeString(valNode)
		case "required":
			param.Required = nodeBool(valNode)
		case "deprecated":
			param.Deprecated = nodeBool(valNode)
		case "schema":
			param.Schema = d.schema(valNode, 1)
		default:
			extraField(&param.Extra, keyNode.Value, valNode)
		}
	}
	return param
}

func (d *decoder) requestBody(node *yaml.Node) *RequestBody {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	body := &RequestBody{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "description":
			body.Description = nodeString(valNode)
		case "required":
			body.Required = nodeBool(valNode)
		case "content":
			body.Content = d.content(valNode)
		default:
			extraField(&body.Extra, keyNode.Value, valNode)
		}
	}
	return body
}

// content decodes a media-type mapping. A media type with a null or scalar
// value still counts as declared, so it keeps its key with an empty entry.
func (d *decoder) content(node *yaml.Node) *sequencedmap.Map[string, *MediaType] {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	content := sequencedmap.New[string, *MediaType]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		mt := d.mediaType(valNode)
		if mt == nil {
			mt = &MediaType{}
		}
		putOnce(d, content, keyNode, mt, "media type")
	}
	return content
}

func (d *decoder) mediaType(node *yaml.Node) *MediaType {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	mt := &MediaType{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "schema":
			mt.Schema = d.schema(valNode, 1)
		default:
			extraField(&mt.Extra, keyNode.Value, valNode)
		}
	}
	return mt
}

func (d *decoder) responses(node *yaml.Node) *sequencedmap.Map[string, *Response] {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	responses := sequencedmap.New[string, *Response]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		if isExtensionKey(keyNode.Value) {
			continue
		}
		resp := d.response(valNode)
		if resp == nil {
			d.warnf("response %q at line %d is not a mapping, ignoring", keyNode.Value, keyNode.Line)
			continue
		}
		putOnce(d, responses, keyNode, resp, "response")
	}
	return responses
}

func (d *decoder) response(node *yaml.Node) *Response {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	resp := &Response{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "description":
			resp.Description = nodeString(valNode)
		case "content":
			resp.Content = d.content(valNode)
		default:
			extraField(&resp.Extra, keyNode.Value, valNode)
		}
	}
	return resp
}

// schema decodes a schema node. depth guards the recursion through
// properties and items; subtrees beyond the configured limit are dropped
// with a warning.
func (d *decoder) schema(node *yaml.Node, depth int) *Schema {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	if depth > d.maxDepth {
		d.warnf("schema at line %d exceeds maximum nesting depth %d, truncating", node.Line, d.maxDepth)
		return nil
	}
	s := &Schema{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "$ref":
			s.Ref = nodeString(valNode)
		case "type":
			s.Type = nodeString(valNode)
		case "description":
			s.Description = nodeString(valNode)
		case "format":
			s.Format = nodeString(valNode)
		case "properties":
			s.Properties = d.properties(valNode, depth)
		case "required":
			s.Required = nodeStringSlice(valNode)
		case "items":
			s.Items = d.schema(valNode, depth+1)
		case "enum":
			s.Enum = d.enumValues(valNode)
		default:
			extraField(&s.Extra, keyNode.Value, valNode)
		}
	}
	return s
}

// properties decodes a schema's properties mapping. A present but empty
// mapping yields an initialized zero-length map, which is distinct from an
// absent one.
func (d *decoder) properties(node *yaml.Node, depth int) *sequencedmap.Map[string, *Schema] {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	props := sequencedmap.New[string, *Schema]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		putOnce(d, props, keyNode, d.schema(valNode, depth+1), "property")
	}
	return props
}

func (d *decoder) enumValues(node *yaml.Node) []any {
	node = resolveAlias(node)
	if !isSequence(node) {
		return nil
	}
	out := make([]any, 0, len(node.Content))
	for _, item := range node.Content {
		out = append(out, nodeAny(item))
	}
	return out
}

func (d *decoder) components(node *yaml.Node) *Components {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	comps := &Components{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "schemas":
			comps.Schemas = d.schemas(valNode)
		case "securitySchemes":
			comps.SecuritySchemes = d.securitySchemes(valNode)
		default:
			extraField(&comps.Extra, keyNode.Value, valNode)
		}
	}
	return comps
}

func (d *decoder) schemas(node *yaml.Node) *sequencedmap.Map[string, *Schema] {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	schemas := sequencedmap.New[string, *Schema]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		putOnce(d, schemas, keyNode, d.schema(valNode, 1), "schema")
	}
	return schemas
}

func (d *decoder) securitySchemes(node *yaml.Node) *sequencedmap.Map[string, *SecurityScheme] {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	schemes := sequencedmap.New[string, *SecurityScheme]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		scheme := d.securityScheme(valNode)
		if scheme == nil {
			d.warnf("security scheme %q at line %d is not a mapping, ignoring", keyNode.Value, keyNode.Line)
			continue
		}
		putOnce(d, schemes, keyNode, scheme, "security scheme")
	}
	return schemes
}

func (d *decoder) securityScheme(node *yaml.Node) *SecurityScheme {
	node = resolveAlias(node)
	if !isMapping(node) {
		return nil
	}
	scheme := &SecurityScheme{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch keyNode.Value {
		case "type":
			scheme.Type = nodeString(valNode)
		case "description":
			scheme.Description = nodeString(valNode)
		case "name":
			scheme.Name = nodeString(valNode)
		case "in":
			scheme.In = nodeString(valNode)
		case "scheme":
			scheme.Scheme = nodeString(valNode)
		case "bearerFormat":
			scheme.BearerFormat = nodeString(valNode)
		default:
			extraField(&scheme.Extra, keyNode.Value, valNode)
		}
	}
	return scheme
}

// securityRequirements decodes a security list. An explicitly empty list
// yields a non-nil empty slice, distinguishing it from an absent key.
func (d *decoder) securityRequirements(node *yaml.Node) []SecurityRequirement {
	node = resolveAlias(node)
	if !isSequence(node) {
		return nil
	}
	reqs := make([]SecurityRequirement, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolveAlias(item)
		if item == nil || item.Kind != yaml.MappingNode {
			continue
		}
		req := make(SecurityRequirement, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			scopes := nodeStringSlice(item.Content[i+1])
			if scopes == nil {
				scopes = []string{}
			}
			req[item.Content[i].Value] = scopes
		}
		reqs = append(reqs, req)
	}
	return reqs
}
