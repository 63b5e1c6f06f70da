package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apispect/apispect/auditor"
	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/maputil"
)

type securityInput struct {
	Spec specInput `json:"spec" jsonschema:"The API descriptor to audit"`
}

type securityScheme struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type securedOperation struct {
	Path    string   `json:"path"`
	Method  string   `json:"method"`
	Schemes []string `json:"schemes,omitempty"`
}

type unsecuredOperation struct {
	Path   string `json:"path"`
	Method string `json:"method"`
}

type securityOutput struct {
	SchemeTypes    []string             `json:"scheme_types,omitempty"`
	Schemes        []securityScheme     `json:"schemes,omitempty"`
	Secured        []securedOperation   `json:"secured,omitempty"`
	Unsecured      []unsecuredOperation `json:"unsecured,omitempty"`
	SecuredCount   int                  `json:"secured_count"`
	UnsecuredCount int                  `json:"unsecured_count"`
	Coverage       float64              `json:"coverage"`
}

func handleSecurity(_ context.Context, _ *mcp.CallToolRequest, input securityInput) (*mcp.CallToolResult, securityOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), securityOutput{}, nil
	}

	report := auditor.Audit(result.Document)

	output := securityOutput{
		SchemeTypes:    report.SchemeTypes,
		Schemes:        makeSlice[securityScheme](len(report.Schemes)),
		Secured:        makeSlice[securedOperation](len(report.Secured)),
		Unsecured:      makeSlice[unsecuredOperation](len(report.Unsecured)),
		SecuredCount:   report.SecuredCount(),
		UnsecuredCount: report.UnsecuredCount(),
		Coverage:       report.Coverage(),
	}

	// Scheme map iteration is randomized; sort names for stable output.
	for _, name := range maputil.SortedKeys(report.Schemes) {
		detail := report.Schemes[name]
		output.Schemes = append(output.Schemes, securityScheme{
			Name:        name,
			Type:        detail.Type,
			Description: truncateText(detail.Description, 200),
		})
	}

	for _, op := range report.Secured {
		output.Secured = append(output.Secured, securedOperation{
			Path:    op.Path,
			Method:  op.Method,
			Schemes: requirementSchemes(op.Requirements),
		})
	}
	for _, op := range report.Unsecured {
		output.Unsecured = append(output.Unsecured, unsecuredOperation{
			Path:   op.Path,
			Method: op.Method,
		})
	}

	return nil, output, nil
}

// requirementSchemes flattens the scheme names of a requirement list.
// Names within each requirement are sorted for stable output; the
// requirement order itself is preserved.
func requirementSchemes(reqs []descriptor.SecurityRequirement) []string {
	var names []string
	for _, req := range reqs {
		names = append(names, maputil.SortedKeys(req)...)
	}
	return names
}
