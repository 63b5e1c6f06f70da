package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apispect/apispect/generator"
	"github.com/apispect/apispect/indexer"
)

type clientInput struct {
	Spec             specInput `json:"spec"                        jsonschema:"The API descriptor to generate a client for"`
	ClientName       string    `json:"client_name,omitempty"       jsonschema:"Class name for the generated client (default ApiClient)"`
	DetectCollisions bool      `json:"detect_collisions,omitempty" jsonschema:"Report duplicate client method names as issues"`
}

type clientMethodSummary struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

type clientOutput struct {
	ClientName  string                `json:"client_name"`
	MethodCount int                   `json:"method_count"`
	Methods     []clientMethodSummary `json:"methods,omitempty"`
	ClientFile  string                `json:"client_file,omitempty"`
	Issues      []string              `json:"issues,omitempty"`
}

func handleClient(_ context.Context, _ *mcp.CallToolRequest, input clientInput) (*mcp.CallToolResult, clientOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), clientOutput{}, nil
	}

	opts := []generator.Option{
		generator.WithParsed(*result),
		generator.WithTypes(false),
	}
	if input.ClientName != "" {
		opts = append(opts, generator.WithClientName(input.ClientName))
	}
	if input.DetectCollisions {
		opts = append(opts, generator.WithDetectCollisions(true))
	}

	genResult, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), clientOutput{}, nil
	}

	methods := generator.ClientMethods(indexer.Index(result.Document))
	output := clientOutput{
		ClientName:  genResult.ClientName,
		MethodCount: len(methods),
		Methods:     makeSlice[clientMethodSummary](len(methods)),
		Issues:      issueStrings(genResult.Issues),
	}
	for _, method := range methods {
		output.Methods = append(output.Methods, clientMethodSummary{
			Name:   method.Name,
			Method: method.Method,
			Path:   method.Path,
		})
	}
	if file := genResult.GetFile(generator.ClientFileName); file != nil {
		output.ClientFile = string(file.Content)
	}

	return nil, output, nil
}
