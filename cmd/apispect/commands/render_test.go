package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apispect/apispect/descriptor"
)

func TestRenderSummaryTable(t *testing.T) {
	headers := []string{"METHOD", "PATH"}
	rows := [][]string{
		{"GET", "/pets"},
		{"POST", "/pets"},
	}

	t.Run("empty rows produce no output", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummaryTable(&buf, headers, nil, false)
		assert.Empty(t, buf.String())
	})

	t.Run("normal mode includes headers", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummaryTable(&buf, headers, rows, false)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "METHOD")
		assert.Contains(t, lines[0], "PATH")
		assert.Contains(t, lines[1], "GET")
		assert.Contains(t, lines[2], "POST")
		assert.NotContains(t, buf.String(), "\t")
	})

	t.Run("quiet mode is tab-separated without headers", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummaryTable(&buf, headers, rows, true)
		assert.Equal(t, "GET\t/pets\nPOST\t/pets\n", buf.String())
	})
}

func TestRenderSummaryStructured(t *testing.T) {
	headers := []string{"NAME", "IN"}
	rows := [][]string{{"petId", "path"}}

	var buf bytes.Buffer
	require.NoError(t, RenderSummaryStructured(&buf, headers, rows, FormatJSON))

	var records []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "petId", records[0]["name"])
	assert.Equal(t, "path", records[0]["in"])
}

func TestRenderDetail(t *testing.T) {
	node := map[string]string{"name": "x"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderDetail(&buf, node, FormatJSON))
		assert.JSONEq(t, `{"name": "x"}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderDetail(&buf, node, FormatYAML))
		assert.Equal(t, "name: x\n", buf.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, RenderDetail(&buf, node, "xml"))
	})
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		pattern  string
		want     bool
	}{
		{"empty pattern matches all", "/pets/{petId}", "", true},
		{"exact match", "/pets", "/pets", true},
		{"exact mismatch", "/pets", "/users", false},
		{"star matches one segment", "/pets/{petId}", "/pets/*", true},
		{"star does not span segments", "/pets/1/photos", "/pets/*", false},
		{"star in the middle", "/pets/1/photos", "/pets/*/photos", true},
		{"segment count must match", "/pets", "/pets/*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchPath(tt.template, tt.pattern))
		})
	}
}

func TestMatchMethod(t *testing.T) {
	assert.True(t, matchMethod("GET", ""))
	assert.True(t, matchMethod("GET", "get"))
	assert.True(t, matchMethod("get", "GET"))
	assert.False(t, matchMethod("GET", "post"))
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		name   string
		schema *descriptor.Schema
		want   string
	}{
		{"nil schema", nil, ""},
		{"scalar", &descriptor.Schema{Type: "string"}, "string"},
		{"reference", &descriptor.Schema{Ref: "#/components/schemas/Pet"}, "Pet"},
		{"array of scalars", &descriptor.Schema{Type: "array", Items: &descriptor.Schema{Type: "string"}}, "string[]"},
		{"array of references", &descriptor.Schema{Type: "array", Items: &descriptor.Schema{Ref: "#/components/schemas/Pet"}}, "Pet[]"},
		{"array without items", &descriptor.Schema{Type: "array"}, "array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeLabel(tt.schema))
		})
	}
}
