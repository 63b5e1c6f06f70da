package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apispect/apispect/generator"
)

type interfacesInput struct {
	Spec specInput `json:"spec" jsonschema:"The API descriptor to generate interfaces from"`
}

type interfaceField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

type interfaceSummary struct {
	Name   string           `json:"name"`
	Fields []interfaceField `json:"fields,omitempty"`
}

type interfacesOutput struct {
	Count      int                `json:"count"`
	Interfaces []interfaceSummary `json:"interfaces,omitempty"`
	TypesFile  string             `json:"types_file,omitempty"`
	Issues     []string           `json:"issues,omitempty"`
}

func handleInterfaces(_ context.Context, _ *mcp.CallToolRequest, input interfacesInput) (*mcp.CallToolResult, interfacesOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), interfacesOutput{}, nil
	}

	genResult, err := generator.GenerateWithOptions(
		generator.WithParsed(*result),
		generator.WithClient(false),
	)
	if err != nil {
		return errResult(err), interfacesOutput{}, nil
	}

	decls := generator.Interfaces(result.Document)
	output := interfacesOutput{
		Count:      len(decls),
		Interfaces: makeSlice[interfaceSummary](len(decls)),
		Issues:     issueStrings(genResult.Issues),
	}
	for _, decl := range decls {
		summary := interfaceSummary{
			Name:   decl.Name,
			Fields: makeSlice[interfaceField](len(decl.Fields)),
		}
		for _, field := range decl.Fields {
			summary.Fields = append(summary.Fields, interfaceField{
				Name:     field.Name,
				Type:     field.Type,
				Optional: field.Optional,
			})
		}
		output.Interfaces = append(output.Interfaces, summary)
	}
	if file := genResult.GetFile(generator.TypesFileName); file != nil {
		output.TypesFile = string(file.Content)
	}

	return nil, output, nil
}

// issueStrings renders generation issues in their severity-symbol form.
func issueStrings(issues []generator.GenerateIssue) []string {
	out := makeSlice[string](len(issues))
	for _, issue := range issues {
		out = append(out, issue.String())
	}
	return out
}
