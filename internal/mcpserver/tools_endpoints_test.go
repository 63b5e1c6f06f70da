package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsTool(t *testing.T) {
	input := endpointsInput{
		Spec: specInput{Content: taskSpecYAML},
	}
	_, output, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 2, output.PathCount)
	assert.Equal(t, 3, output.Total)
	require.Len(t, output.Endpoints, 3)

	// Paths and methods in declaration order.
	assert.Equal(t, endpointSummary{
		Path:    "/tasks",
		Method:  "GET",
		Summary: "List tasks",
	}, output.Endpoints[0])
	assert.Equal(t, endpointSummary{
		Path:        "/tasks",
		Method:      "POST",
		OperationID: "createTask",
		Summary:     "Create a task",
		Secured:     true,
	}, output.Endpoints[1])
	assert.Equal(t, endpointSummary{
		Path:        "/tasks/{id}",
		Method:      "GET",
		OperationID: "getTask",
		Summary:     "Get a task",
	}, output.Endpoints[2])
}

func TestEndpointsTool_DeprecatedFlag(t *testing.T) {
	spec := `openapi: "3.0.3"
info:
  title: Deprecations
  version: "1.0.0"
paths:
  /legacy:
    get:
      summary: Old endpoint
      deprecated: true
`
	input := endpointsInput{
		Spec: specInput{Content: spec},
	}
	_, output, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Endpoints, 1)
	assert.True(t, output.Endpoints[0].Deprecated)
}

func TestEndpointsTool_EmptyPaths(t *testing.T) {
	spec := `openapi: "3.0.3"
info:
  title: Empty
  version: "1.0.0"
paths: {}
`
	input := endpointsInput{
		Spec: specInput{Content: spec},
	}
	_, output, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Zero(t, output.PathCount)
	assert.Zero(t, output.Total)
	assert.Nil(t, output.Endpoints)
}

func TestEndpointsTool_InvalidSpec(t *testing.T) {
	input := endpointsInput{
		Spec: specInput{Content: "[just, a, list]"},
	}
	result, _, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
