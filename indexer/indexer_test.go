package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/testutil"
)

func TestIndexDetailedDocument(t *testing.T) {
	doc := testutil.NewDetailedDocument(t)
	inv := Index(doc)

	assert.Equal(t, []string{"/tasks", "/tasks/{id}"}, inv.Paths())
	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, 4, inv.EndpointCount())

	tasks, ok := inv.Get("/tasks")
	require.True(t, ok)
	assert.Equal(t, "/tasks", tasks.Path)
	assert.Equal(t, "Task collection.", tasks.Description)
	assert.Equal(t, []string{"GET", "POST"}, tasks.Methods)
	require.Len(t, tasks.Parameters, 1)
	assert.Equal(t, "workspace", tasks.Parameters[0].Name)

	get, ok := tasks.GetOperation("get")
	require.True(t, ok)
	assert.Equal(t, "GET", get.Method)
	assert.Equal(t, "listTasks", get.OperationID)

	// Merged list: shared entries first, then the method's own in declared order
	names := make([]string, 0, len(get.Parameters))
	for _, p := range get.Parameters {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"workspace", "limit", "session"}, names)
	assert.Nil(t, get.RequestBody)
	assert.Empty(t, get.Security)

	post, ok := tasks.GetOperation("POST")
	require.True(t, ok)
	require.NotNil(t, post.RequestBody)
	assert.True(t, post.RequestBody.Required)
	require.Len(t, post.Security, 1)

	// Responses are carried through unresolved
	require.NotNil(t, post.Responses)
	_, ok = post.Responses.Get("201")
	assert.True(t, ok)
}

func TestIndexMethodListExactness(t *testing.T) {
	doc := testutil.MustParse(t, `
paths:
  /a:
    description: shared
    parameters:
      - name: q
        in: query
    get: {}
    put: {}
    custom: {}
`)
	inv := Index(doc)
	ep, ok := inv.Get("/a")
	require.True(t, ok)
	assert.Equal(t, []string{"GET", "PUT", "CUSTOM"}, ep.Methods,
		"method list is exactly the non-reserved keys upper-cased")
	assert.Equal(t, len(ep.Methods), ep.Operations.Len())
}

func TestIndexEmptyDocument(t *testing.T) {
	t.Run("nil document", func(t *testing.T) {
		inv := Index(nil)
		require.NotNil(t, inv)
		assert.Equal(t, 0, inv.Len())
		assert.Equal(t, 0, inv.EndpointCount())
		assert.Nil(t, inv.Paths())
	})

	t.Run("document without paths", func(t *testing.T) {
		doc := testutil.MustParse(t, "openapi: 3.0.3\n")
		inv := Index(doc)
		require.NotNil(t, inv)
		assert.Equal(t, 0, inv.Len())
	})

	t.Run("empty path map", func(t *testing.T) {
		doc := testutil.MustParse(t, "paths: {}\n")
		inv := Index(doc)
		assert.Equal(t, 0, inv.Len())
	})
}

func TestIndexPathWithoutMethods(t *testing.T) {
	doc := testutil.MustParse(t, `
paths:
  /meta:
    description: only shared fields
    parameters:
      - name: q
        in: query
`)
	inv := Index(doc)
	ep, ok := inv.Get("/meta")
	require.True(t, ok)
	assert.Nil(t, ep.Methods)
	assert.Equal(t, 0, ep.Operations.Len())
	require.Len(t, ep.Parameters, 1)
}

func TestIndexMergesPerOperation(t *testing.T) {
	doc := testutil.MustParse(t, `
paths:
  /a:
    parameters:
      - name: shared1
        in: query
    get:
      parameters:
        - name: own1
          in: query
    post:
      parameters:
        - name: own2
          in: query
`)
	inv := Index(doc)
	ep, ok := inv.Get("/a")
	require.True(t, ok)
	get, ok := ep.GetOperation("get")
	require.True(t, ok)
	post, ok := ep.GetOperation("post")
	require.True(t, ok)

	require.Len(t, get.Parameters, 2)
	require.Len(t, post.Parameters, 2)
	assert.Equal(t, "shared1", get.Parameters[0].Name)
	assert.Equal(t, "own1", get.Parameters[1].Name)
	assert.Equal(t, "shared1", post.Parameters[0].Name)
	assert.Equal(t, "own2", post.Parameters[1].Name)
	require.Len(t, ep.Parameters, 1, "shared list keeps its own length")
}

func TestIndexCaseCollapsedMethods(t *testing.T) {
	doc := testutil.MustParse(t, `
paths:
  /a:
    get:
      summary: lower
    GET:
      summary: upper
`)
	inv := Index(doc)
	ep, ok := inv.Get("/a")
	require.True(t, ok)
	assert.Equal(t, []string{"GET", "GET"}, ep.Methods, "token list is literal")
	assert.Equal(t, 1, ep.Operations.Len(), "records collapse by upper-cased token")
	rec, ok := ep.GetOperation("get")
	require.True(t, ok)
	assert.Equal(t, "lower", rec.Summary, "first declaration wins")
}

func TestInventoryNilSafety(t *testing.T) {
	var inv *Inventory
	_, ok := inv.Get("/a")
	assert.False(t, ok)
	assert.Nil(t, inv.Paths())
	assert.Equal(t, 0, inv.Len())
	assert.Equal(t, 0, inv.EndpointCount())
	for range inv.All() {
		t.Fatal("nil inventory must not yield endpoints")
	}

	var ep *Endpoint
	_, ok = ep.GetOperation("get")
	assert.False(t, ok)
}

func TestMergeParameters(t *testing.T) {
	a := &descriptor.Parameter{Name: "a"}
	b := &descriptor.Parameter{Name: "b"}
	dup := &descriptor.Parameter{Name: "a"}

	assert.Nil(t, mergeParameters(nil, nil))

	merged := mergeParameters([]*descriptor.Parameter{a}, []*descriptor.Parameter{b, dup})
	require.Len(t, merged, 3)
	assert.Same(t, a, merged[0])
	assert.Same(t, b, merged[1])
	assert.Same(t, dup, merged[2], "duplicate names are kept")

	sharedOnly := mergeParameters([]*descriptor.Parameter{a, b}, nil)
	assert.Len(t, sharedOnly, 2)
}
