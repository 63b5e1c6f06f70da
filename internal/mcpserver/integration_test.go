package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalDescriptorJSON is a minimal valid API descriptor used across
// integration tests.
const minimalDescriptorJSON = `{
  "openapi": "3.1.0",
  "info": {"title": "Test API", "version": "1.0.0"},
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "summary": "List all pets",
        "responses": {"200": {"description": "OK"}}
      },
      "post": {
        "operationId": "createPet",
        "summary": "Create a pet",
        "security": [{"bearerAuth": []}],
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/pets/{petId}": {
      "get": {
        "operationId": "getPet",
        "summary": "Get a pet by ID",
        "parameters": [{"name": "petId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "OK"}}
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"}
        }
      }
    },
    "securitySchemes": {
      "bearerAuth": {
        "type": "http",
        "scheme": "bearer"
      }
    }
  }
}`

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "apispect-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background — it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Tools, 7, "expected 7 registered tools")

	// Collect tool names and verify expected ones are present.
	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}

	expectedTools := []string{
		"parse",
		"endpoints",
		"parameters",
		"request_body",
		"interfaces",
		"client",
		"security",
	}

	for _, name := range expectedTools {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	// Every tool should have a non-empty description.
	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
}

func TestIntegration_CallTool_Parse(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "parse",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": minimalDescriptorJSON,
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "parse should succeed on a valid descriptor")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "Test API", structured["title"])
	assert.Equal(t, "1.0.0", structured["version"])
	assert.Equal(t, "3.1.0", structured["openapi"])
	assert.Equal(t, "json", structured["format"])
	assert.Equal(t, float64(2), structured["path_count"])
	assert.Equal(t, float64(3), structured["operation_count"])
	assert.Equal(t, float64(1), structured["schema_count"])
	assert.Equal(t, float64(1), structured["security_scheme_count"])
	assert.Equal(t, float64(1), structured["secured_operation_count"])
}

func TestIntegration_CallTool_Endpoints(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "endpoints",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": minimalDescriptorJSON,
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "endpoints should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(2), structured["path_count"])
	assert.Equal(t, float64(3), structured["total"])

	endpoints, ok := structured["endpoints"].([]any)
	require.True(t, ok, "endpoints should be an array")
	require.Len(t, endpoints, 3)

	// Declaration order is preserved and methods are canonicalized.
	first, ok := endpoints[0].(map[string]any)
	require.True(t, ok, "expected endpoint to be map[string]any, got %T", endpoints[0])
	assert.Equal(t, "/pets", first["path"])
	assert.Equal(t, "GET", first["method"])
	assert.Equal(t, "listPets", first["operation_id"])

	operationIDs := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		m, ok := e.(map[string]any)
		require.True(t, ok, "expected endpoint to be map[string]any, got %T", e)
		opID, ok := m["operation_id"].(string)
		require.True(t, ok, "expected operation_id to be string, got %T", m["operation_id"])
		operationIDs = append(operationIDs, opID)
		if opID == "createPet" {
			assert.Equal(t, true, m["secured"], "createPet declares its own security")
		}
	}
	assert.Contains(t, operationIDs, "listPets")
	assert.Contains(t, operationIDs, "createPet")
	assert.Contains(t, operationIDs, "getPet")
}

func TestIntegration_CallTool_Security(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "security",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": minimalDescriptorJSON,
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "security should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, []any{"http"}, structured["scheme_types"])
	assert.Equal(t, float64(1), structured["secured_count"])
	assert.Equal(t, float64(2), structured["unsecured_count"])
	assert.InDelta(t, 1.0/3.0, structured["coverage"], 0.01)

	secured, ok := structured["secured"].([]any)
	require.True(t, ok, "secured should be an array")
	require.Len(t, secured, 1)
	op, ok := secured[0].(map[string]any)
	require.True(t, ok, "expected secured operation to be map[string]any, got %T", secured[0])
	assert.Equal(t, "/pets", op["path"])
	assert.Equal(t, "POST", op["method"])
	assert.Equal(t, []any{"bearerAuth"}, op["schemes"])
}

func TestIntegration_CallTool_Error_InvalidSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "parse",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": "this is not a mapping",
			},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "parse should return IsError for unparseable input")

	// The error content should contain descriptive text.
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.NotEmpty(t, text.Text)
}

func TestIntegration_CallTool_Error_MissingSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "endpoints",
		Arguments: map[string]any{
			"spec": map[string]any{},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "endpoints should return IsError when no source is provided")
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
