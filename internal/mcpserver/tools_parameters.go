package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/resolver"
)

type parametersInput struct {
	Spec   specInput `json:"spec"   jsonschema:"The API descriptor to resolve against"`
	Path   string    `json:"path"   jsonschema:"URL-path template of the operation (e.g. /users/{id})"`
	Method string    `json:"method" jsonschema:"HTTP method of the operation (case-insensitive)"`
}

type parameterSummary struct {
	Name        string `json:"name"`
	In          string `json:"in,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type parametersOutput struct {
	Path         string             `json:"path"`
	Method       string             `json:"method"`
	Total        int                `json:"total"`
	PathParams   []parameterSummary `json:"path_parameters,omitempty"`
	Query        []parameterSummary `json:"query_parameters,omitempty"`
	Header       []parameterSummary `json:"header_parameters,omitempty"`
	Cookie       []parameterSummary `json:"cookie_parameters,omitempty"`
	Unclassified []parameterSummary `json:"unclassified_parameters,omitempty"`
}

func handleParameters(_ context.Context, _ *mcp.CallToolRequest, input parametersInput) (*mcp.CallToolResult, parametersOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), parametersOutput{}, nil
	}
	if input.Method == "" {
		return errResult(fmt.Errorf("method is required")), parametersOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parametersOutput{}, nil
	}

	set, err := resolver.Parameters(result.Document, input.Path, input.Method)
	if err != nil {
		return errResult(err), parametersOutput{}, nil
	}

	output := parametersOutput{
		Path:         input.Path,
		Method:       strings.ToUpper(input.Method),
		Total:        set.Len(),
		PathParams:   summarizeParameters(set.Path),
		Query:        summarizeParameters(set.Query),
		Header:       summarizeParameters(set.Header),
		Cookie:       summarizeParameters(set.Cookie),
		Unclassified: summarizeParameters(set.Unclassified),
	}

	return nil, output, nil
}

func summarizeParameters(params []*descriptor.Parameter) []parameterSummary {
	out := makeSlice[parameterSummary](len(params))
	for _, p := range params {
		out = append(out, parameterSummary{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required,
			Deprecated:  p.Deprecated,
			Type:        schemaLabel(p.Schema),
			Description: truncateText(p.Description, 200),
		})
	}
	return out
}
