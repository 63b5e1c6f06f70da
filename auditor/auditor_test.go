package auditor

import (
	"testing"

	"github.com/apispect/apispect/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditDetailedDocument(t *testing.T) {
	doc := testutil.NewDetailedDocument(t)

	report := Audit(doc)

	assert.Equal(t, []string{"http", "apiKey"}, report.SchemeTypes)
	require.Len(t, report.Schemes, 2)
	assert.Equal(t, SchemeDetail{Type: "http"}, report.Schemes["bearerAuth"])
	assert.Equal(t, SchemeDetail{Type: "apiKey"}, report.Schemes["apiKeyAuth"])

	require.Len(t, report.Secured, 2)
	assert.Equal(t, "/tasks", report.Secured[0].Path)
	assert.Equal(t, "POST", report.Secured[0].Method)
	require.Len(t, report.Secured[0].Requirements, 1)
	assert.Contains(t, report.Secured[0].Requirements[0], "bearerAuth")
	assert.Equal(t, "/tasks/{id}", report.Secured[1].Path)
	assert.Equal(t, "PATCH", report.Secured[1].Method)

	assert.Equal(t, []OperationRef{
		{Path: "/tasks", Method: "GET"},
		{Path: "/tasks/{id}", Method: "GET"},
	}, report.Unsecured)

	assert.Equal(t, 2, report.SecuredCount())
	assert.Equal(t, 2, report.UnsecuredCount())
	assert.Equal(t, 4, report.OperationCount())
	assert.InDelta(t, 0.5, report.Coverage(), 0.0001)
}

func TestAuditDocumentRootSecurityIgnored(t *testing.T) {
	doc := testutil.MustParse(t, `openapi: 3.0.3
info:
  title: Root Secured API
  version: 1.0.0
security:
  - bearerAuth: []
paths:
  /ping:
    get:
      responses:
        '200':
          description: ok
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
`)
	require.NotEmpty(t, doc.Security, "the root requirement is carried on the model")

	report := Audit(doc)

	// The root-level requirement never secures an operation; only the
	// operation's own list counts.
	assert.Empty(t, report.Secured)
	assert.Equal(t, []OperationRef{{Path: "/ping", Method: "GET"}}, report.Unsecured)
	assert.Equal(t, []string{"http"}, report.SchemeTypes)
}

func TestAuditEmptySecurityListIsUnsecured(t *testing.T) {
	doc := testutil.MustParse(t, `openapi: 3.0.3
info:
  title: Empty List API
  version: 1.0.0
paths:
  /ping:
    get:
      security: []
      responses:
        '200':
          description: ok
`)

	report := Audit(doc)
	assert.Empty(t, report.Secured)
	assert.Len(t, report.Unsecured, 1)
}

func TestAuditSchemeTypeDedup(t *testing.T) {
	doc := testutil.MustParse(t, `openapi: 3.0.3
info:
  title: Many Schemes API
  version: 1.0.0
paths: {}
components:
  securitySchemes:
    basicAuth:
      type: http
      scheme: basic
    bearerAuth:
      type: http
      scheme: bearer
    keyAuth:
      type: apiKey
      name: X-Key
      in: header
`)

	report := Audit(doc)

	assert.Equal(t, []string{"http", "apiKey"}, report.SchemeTypes, "types deduplicate in first-seen order")
	assert.Len(t, report.Schemes, 3)
}

func TestAuditSchemeWithoutType(t *testing.T) {
	doc := testutil.MustParse(t, `openapi: 3.0.3
info:
  title: Odd Scheme API
  version: 1.0.0
paths: {}
components:
  securitySchemes:
    mystery:
      description: no type declared
`)

	report := Audit(doc)

	assert.Empty(t, report.SchemeTypes)
	assert.Equal(t, SchemeDetail{Description: "no type declared"}, report.Schemes["mystery"])
}

func TestAuditCustomMethodToken(t *testing.T) {
	doc := testutil.MustParse(t, `openapi: 3.0.3
info:
  title: Purge API
  version: 1.0.0
paths:
  /cache:
    purge:
      security:
        - keyAuth: []
      responses:
        '204':
          description: purged
`)

	report := Audit(doc)
	require.Len(t, report.Secured, 1)
	assert.Equal(t, "PURGE", report.Secured[0].Method)
}

func TestAuditNilDocument(t *testing.T) {
	report := Audit(nil)
	require.NotNil(t, report)
	assert.Empty(t, report.SchemeTypes)
	assert.Empty(t, report.Schemes)
	assert.Empty(t, report.Secured)
	assert.Empty(t, report.Unsecured)
	assert.Zero(t, report.Coverage())
}

func TestAuditSimpleDocument(t *testing.T) {
	report := Audit(testutil.NewSimpleDocument(t))

	assert.Empty(t, report.SchemeTypes)
	assert.Empty(t, report.Secured)
	assert.Equal(t, []OperationRef{{Path: "/ping", Method: "GET"}}, report.Unsecured)
	assert.False(t, report.Coverage() > 0)
	assert.True(t, report.HasUnsecured())
}

func TestAuditRequirementsAsDeclared(t *testing.T) {
	doc := testutil.MustParse(t, `openapi: 3.0.3
info:
  title: Multi Requirement API
  version: 1.0.0
paths:
  /things:
    delete:
      security:
        - bearerAuth: []
        - keyAuth:
            - read
            - write
      responses:
        '204':
          description: gone
`)

	report := Audit(doc)
	require.Len(t, report.Secured, 1)
	reqs := report.Secured[0].Requirements
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[0], "bearerAuth")
	assert.Equal(t, []string{"read", "write"}, reqs[1]["keyAuth"])
}
