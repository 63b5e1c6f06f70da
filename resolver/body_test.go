package resolver

import (
	"testing"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/testutil"
	"github.com/apispect/apispect/specerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyJSON(t *testing.T) {
	doc := testutil.NewDetailedDocument(t)

	info, err := Body(doc, "/tasks", "post")
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.True(t, info.Defined)
	assert.True(t, info.Required)
	assert.Equal(t, []string{"application/json"}, info.MediaTypes)
	require.NotNil(t, info.Schema)
	assert.Equal(t, descriptor.KindReference, info.Schema.Kind())
	assert.Equal(t, "NewTask", info.Schema.RefName())
}

func TestBodyXMLOnly(t *testing.T) {
	doc := testutil.NewDetailedDocument(t)

	info, err := Body(doc, "/tasks/{id}", "patch")
	require.NoError(t, err)

	assert.True(t, info.Defined)
	assert.False(t, info.Required, "absent required flag defaults to false")
	assert.Equal(t, []string{"application/xml"}, info.MediaTypes)
	assert.Nil(t, info.Schema, "schema is only extracted for application/json")
}

func TestBodyNone(t *testing.T) {
	doc := testutil.NewDetailedDocument(t)

	for _, tc := range []struct {
		path   string
		method string
	}{
		{"/tasks", "get"},
		{"/tasks/{id}", "get"},
	} {
		info, err := Body(doc, tc.path, tc.method)
		require.NoError(t, err, "%s %s", tc.method, tc.path)
		require.NotNil(t, info)
		assert.False(t, info.Defined, "%s %s declares no body", tc.method, tc.path)
		assert.False(t, info.Required)
		assert.Empty(t, info.MediaTypes)
		assert.Nil(t, info.Schema)
	}
}

func TestBodyContentVariants(t *testing.T) {
	doc := testutil.MustParse(t, `openapi: 3.0.3
info:
  title: Body API
  version: 1.0.0
paths:
  /no-content-key:
    post:
      requestBody:
        description: declared without content
      responses:
        '200':
          description: OK
  /null-content:
    post:
      requestBody:
        content:
      responses:
        '200':
          description: OK
  /empty-content:
    post:
      requestBody:
        required: true
        content: {}
      responses:
        '200':
          description: OK
  /multi:
    post:
      requestBody:
        required: true
        content:
          application/xml:
            schema:
              type: string
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
          text/plain: {}
      responses:
        '200':
          description: OK
`)

	t.Run("request body without content", func(t *testing.T) {
		info, err := Body(doc, "/no-content-key", "post")
		require.NoError(t, err)
		assert.False(t, info.Defined)
	})

	t.Run("null content", func(t *testing.T) {
		info, err := Body(doc, "/null-content", "post")
		require.NoError(t, err)
		assert.False(t, info.Defined)
	})

	t.Run("empty content map", func(t *testing.T) {
		info, err := Body(doc, "/empty-content", "post")
		require.NoError(t, err)
		assert.True(t, info.Defined)
		assert.True(t, info.Required)
		assert.Empty(t, info.MediaTypes)
		assert.Nil(t, info.Schema)
	})

	t.Run("json schema among other media types", func(t *testing.T) {
		info, err := Body(doc, "/multi", "post")
		require.NoError(t, err)

		assert.True(t, info.Defined)
		assert.True(t, info.Required)
		assert.Equal(t, []string{"application/xml", "application/json", "text/plain"}, info.MediaTypes,
			"media types keep declaration order")

		require.NotNil(t, info.Schema)
		assert.Equal(t, descriptor.KindObject, info.Schema.Kind())

		// The schema is the document's own value, not a copy.
		item, ok := doc.GetPath("/multi")
		require.True(t, ok)
		op, ok := item.GetOperation("post")
		require.True(t, ok)
		mt, ok := op.RequestBody.Content.Get("application/json")
		require.True(t, ok)
		assert.Same(t, mt.Schema, info.Schema)
	})
}

func TestBodyNotFound(t *testing.T) {
	doc := testutil.NewDetailedDocument(t)

	info, err := Body(doc, "/missing", "post")
	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, specerrors.ErrNotFound)

	info, err = Body(doc, "/tasks", "DELETE")
	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, specerrors.ErrNotFound)

	var nfe *specerrors.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "delete", nfe.Method)
}

func TestBodyCaseInsensitiveMethod(t *testing.T) {
	doc := testutil.NewDetailedDocument(t)

	info, err := Body(doc, "/tasks", "POST")
	require.NoError(t, err)
	assert.True(t, info.Defined)
}
