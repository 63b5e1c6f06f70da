package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationContextString(t *testing.T) {
	tests := []struct {
		name     string
		ctx      OperationContext
		expected string
	}{
		{
			name: "operationId preferred when declared",
			ctx: OperationContext{
				Method:      "GET",
				Path:        "/tasks/{id}",
				OperationID: "getTask",
			},
			expected: "(operationId: getTask)",
		},
		{
			name: "method and path without operationId",
			ctx: OperationContext{
				Method: "GET",
				Path:   "/tasks/{id}",
			},
			expected: "(GET /tasks/{id})",
		},
		{
			name:     "path-level context",
			ctx:      OperationContext{Path: "/tasks"},
			expected: "(path: /tasks)",
		},
		{
			name:     "empty context renders nothing",
			ctx:      OperationContext{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ctx.String())
		})
	}
}

func TestOperationContextIsEmpty(t *testing.T) {
	assert.True(t, OperationContext{}.IsEmpty())
	assert.False(t, OperationContext{Method: "GET"}.IsEmpty())
	assert.False(t, OperationContext{Path: "/tasks"}.IsEmpty())
	assert.False(t, OperationContext{OperationID: "listTasks"}.IsEmpty())
}
