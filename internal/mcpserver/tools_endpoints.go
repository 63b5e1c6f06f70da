package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apispect/apispect/indexer"
)

type endpointsInput struct {
	Spec specInput `json:"spec" jsonschema:"The API descriptor to index"`
}

type endpointSummary struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	OperationID string `json:"operation_id,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	Secured     bool   `json:"secured,omitempty"`
}

type endpointsOutput struct {
	PathCount int               `json:"path_count"`
	Total     int               `json:"total"`
	Endpoints []endpointSummary `json:"endpoints,omitempty"`
}

func handleEndpoints(_ context.Context, _ *mcp.CallToolRequest, input endpointsInput) (*mcp.CallToolResult, endpointsOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), endpointsOutput{}, nil
	}

	inv := indexer.Index(result.Document)

	output := endpointsOutput{
		PathCount: inv.Len(),
		Total:     inv.EndpointCount(),
		Endpoints: makeSlice[endpointSummary](inv.EndpointCount()),
	}
	for path, ep := range inv.All() {
		for method, rec := range ep.Operations.All() {
			output.Endpoints = append(output.Endpoints, endpointSummary{
				Path:        path,
				Method:      method,
				OperationID: rec.OperationID,
				Summary:     truncateText(rec.Summary, 200),
				Deprecated:  rec.Deprecated,
				Secured:     len(rec.Security) > 0,
			})
		}
	}

	return nil, output, nil
}
