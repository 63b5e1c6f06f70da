package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The API descriptor to parse"`
}

type parseOutput struct {
	Title                 string   `json:"title"`
	Version               string   `json:"version,omitempty"`
	OpenAPI               string   `json:"openapi,omitempty"`
	Description           string   `json:"description,omitempty"`
	Format                string   `json:"format"`
	PathCount             int      `json:"path_count"`
	OperationCount        int      `json:"operation_count"`
	SchemaCount           int      `json:"schema_count"`
	SecuritySchemeCount   int      `json:"security_scheme_count"`
	SecuredOperationCount int      `json:"secured_operation_count"`
	Warnings              []string `json:"warnings,omitempty"`
	Findings              []string `json:"findings,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Format:                string(result.SourceFormat),
		PathCount:             result.Stats.PathCount,
		OperationCount:        result.Stats.OperationCount,
		SchemaCount:           result.Stats.SchemaCount,
		SecuritySchemeCount:   result.Stats.SecuritySchemeCount,
		SecuredOperationCount: result.Stats.SecuredOperationCount,
		Warnings:              result.Warnings,
	}

	if doc := result.Document; doc != nil {
		output.OpenAPI = doc.OpenAPI
		if doc.Info != nil {
			output.Title = doc.Info.Title
			output.Version = doc.Info.Version
			output.Description = truncateText(doc.Info.Description, 200)
		}
	}

	output.Findings = makeSlice[string](len(result.Errors))
	for _, finding := range result.Errors {
		output.Findings = append(output.Findings, finding.Error())
	}

	return nil, output, nil
}
