package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/testutil"
)

// TestIndexWithOptions_FilePath tests the functional options API with file path
func TestIndexWithOptions_FilePath(t *testing.T) {
	result, err := IndexWithOptions(
		WithFilePath("../testdata/users-api.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "../testdata/users-api.yaml", result.SourcePath)
	assert.Equal(t, descriptor.SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, 2, result.Stats.PathCount)
	require.NotNil(t, result.Document)
	require.NotNil(t, result.Inventory)
	assert.Equal(t, 2, result.Inventory.Len())
	assert.Equal(t, 5, result.Inventory.EndpointCount())
}

// TestIndexWithOptions_Bytes tests the functional options API with byte slice
func TestIndexWithOptions_Bytes(t *testing.T) {
	result, err := IndexWithOptions(
		WithBytes([]byte(testutil.DetailedDocumentYAML)),
	)
	require.NoError(t, err)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
	assert.Equal(t, []string{"/tasks", "/tasks/{id}"}, result.Inventory.Paths())
}

// TestIndexWithOptions_Parsed tests reusing an already parsed document
func TestIndexWithOptions_Parsed(t *testing.T) {
	parsed, err := descriptor.ParseWithOptions(
		descriptor.WithFilePath("../testdata/users-api.yaml"),
	)
	require.NoError(t, err)

	result, err := IndexWithOptions(
		WithParsed(*parsed),
	)
	require.NoError(t, err)
	assert.Same(t, parsed.Document, result.Document, "parsed document is reused, not re-parsed")
	assert.Equal(t, parsed.SourcePath, result.SourcePath)
	assert.Equal(t, 2, result.Inventory.Len())
}

// TestIndexWithOptions_NoInputSource tests error when no input source is specified
func TestIndexWithOptions_NoInputSource(t *testing.T) {
	_, err := IndexWithOptions(
		WithUserAgent("test/1.0"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify an input source")
}

// TestIndexWithOptions_MultipleInputSources tests error when multiple input sources are specified
func TestIndexWithOptions_MultipleInputSources(t *testing.T) {
	_, err := IndexWithOptions(
		WithFilePath("../testdata/users-api.yaml"),
		WithBytes([]byte("openapi: 3.0.3")),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify exactly one input source")
}

// TestIndexWithOptions_NilBytes tests error when nil bytes are provided
func TestIndexWithOptions_NilBytes(t *testing.T) {
	_, err := IndexWithOptions(
		WithBytes(nil),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bytes cannot be nil")
}

// TestIndexWithOptions_ParsedWithoutDocument tests error for an empty parse result
func TestIndexWithOptions_ParsedWithoutDocument(t *testing.T) {
	_, err := IndexWithOptions(
		WithParsed(descriptor.ParseResult{}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsed result has no document")
}

// TestIndexWithOptions_ParseFailure tests that parse errors are propagated
func TestIndexWithOptions_ParseFailure(t *testing.T) {
	_, err := IndexWithOptions(
		WithFilePath("../testdata/does-not-exist.yaml"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse source")
}

// TestIndexWithOptions_Logger tests that a logger can be attached
func TestIndexWithOptions_Logger(t *testing.T) {
	result, err := IndexWithOptions(
		WithBytes([]byte(testutil.SimpleDocumentYAML)),
		WithLogger(descriptor.NopLogger{}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inventory.Len())
}
