// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/fileutil"
)

// MustParse parses source as a descriptor document and fails the test on any
// error. Structure validation is disabled so fixtures may be deliberately
// incomplete.
func MustParse(t *testing.T, source string) *descriptor.Document {
	t.Helper()

	p := descriptor.New()
	p.ValidateStructure = false
	result, err := p.ParseBytes([]byte(source))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	if result.Document == nil {
		t.Fatal("Fixture parse produced no document")
	}
	return result.Document
}

// SimpleDocumentYAML is a minimal descriptor document: one path, one method.
const SimpleDocumentYAML = `openapi: 3.0.3
info:
  title: Ping API
  version: 1.0.0
paths:
  /ping:
    get:
      summary: Health probe
      responses:
        '200':
          description: OK
`

// DetailedDocumentYAML is a descriptor document exercising the features the
// tool packages care about: shared path parameters merged with method
// parameters, JSON and XML request bodies, secured and unsecured operations,
// and every schema kind in the components section.
const DetailedDocumentYAML = `openapi: 3.0.3
info:
  title: Task API
  version: 2.1.0
paths:
  /tasks:
    description: Task collection.
    parameters:
      - name: workspace
        in: header
        required: true
    get:
      summary: List tasks
      operationId: listTasks
      parameters:
        - name: limit
          in: query
        - name: session
          in: cookie
      responses:
        '200':
          description: OK
    post:
      summary: Create a task
      operationId: createTask
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/NewTask'
      security:
        - bearerAuth: []
      responses:
        '201':
          description: Created
  /tasks/{id}:
    parameters:
      - name: id
        in: path
        required: true
    get:
      summary: Fetch one task
      operationId: getTask
      responses:
        '200':
          description: OK
    patch:
      summary: Update a task
      operationId: updateTask
      requestBody:
        content:
          application/xml:
            schema:
              type: string
      security:
        - apiKeyAuth: []
      responses:
        '200':
          description: OK
components:
  schemas:
    Task:
      type: object
      required:
        - id
      properties:
        id:
          type: string
        labels:
          type: array
          items:
            type: string
        owner:
          $ref: '#/components/schemas/Owner'
    NewTask:
      type: object
      properties:
        title:
          type: string
    Owner:
      type: object
      properties:
        name:
          type: string
    TaskPage:
      type: array
      items:
        $ref: '#/components/schemas/Task'
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
    apiKeyAuth:
      type: apiKey
      name: X-API-Key
      in: header
`

// NewSimpleDocument parses SimpleDocumentYAML into a document.
func NewSimpleDocument(t *testing.T) *descriptor.Document {
	t.Helper()
	return MustParse(t, SimpleDocumentYAML)
}

// NewDetailedDocument parses DetailedDocumentYAML into a document.
func NewDetailedDocument(t *testing.T) *descriptor.Document {
	t.Helper()
	return MustParse(t, DetailedDocumentYAML)
}

// WriteTempYAML writes source to a temporary .yaml file and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, source string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, []byte(source), fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON writes source to a temporary .json file and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, source string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, []byte(source), fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
