package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apispect/apispect/resolver"
)

type requestBodyInput struct {
	Spec   specInput `json:"spec"   jsonschema:"The API descriptor to resolve against"`
	Path   string    `json:"path"   jsonschema:"URL-path template of the operation (e.g. /users/{id})"`
	Method string    `json:"method" jsonschema:"HTTP method of the operation (case-insensitive)"`
}

type bodyField struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type requestBodyOutput struct {
	Path       string      `json:"path"`
	Method     string      `json:"method"`
	Defined    bool        `json:"defined"`
	Required   bool        `json:"required,omitempty"`
	MediaTypes []string    `json:"media_types,omitempty"`
	SchemaType string      `json:"schema_type,omitempty"`
	Fields     []bodyField `json:"fields,omitempty"`
}

func handleRequestBody(_ context.Context, _ *mcp.CallToolRequest, input requestBodyInput) (*mcp.CallToolResult, requestBodyOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), requestBodyOutput{}, nil
	}
	if input.Method == "" {
		return errResult(fmt.Errorf("method is required")), requestBodyOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), requestBodyOutput{}, nil
	}

	info, err := resolver.Body(result.Document, input.Path, input.Method)
	if err != nil {
		return errResult(err), requestBodyOutput{}, nil
	}

	output := requestBodyOutput{
		Path:       input.Path,
		Method:     strings.ToUpper(input.Method),
		Defined:    info.Defined,
		Required:   info.Required,
		MediaTypes: info.MediaTypes,
	}

	if schema := info.Schema; schema != nil {
		output.SchemaType = schemaLabel(schema)
		if schema.Properties != nil {
			output.Fields = makeSlice[bodyField](schema.Properties.Len())
			for name, prop := range schema.Properties.All() {
				output.Fields = append(output.Fields, bodyField{
					Name:     name,
					Type:     schemaLabel(prop),
					Required: schema.IsRequired(name),
				})
			}
		}
	}

	return nil, output, nil
}
