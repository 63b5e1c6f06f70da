package issues

import (
	"testing"

	"github.com/apispect/apispect/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "error severity",
			issue: Issue{
				Path:     "paths./tasks.get",
				Message:  "missing required field",
				Severity: severity.SeverityError,
			},
			contains:    []string{"✗", "paths./tasks.get", "missing required field"},
			notContains: []string{"Context:", "line"},
		},
		{
			name: "critical severity shares the error symbol",
			issue: Issue{
				Path:     "components.schemas.Task",
				Message:  "cannot process schema",
				Severity: severity.SeverityCritical,
			},
			contains: []string{"✗", "components.schemas.Task"},
		},
		{
			name: "warning severity",
			issue: Issue{
				Path:     "info.version",
				Message:  "version should follow semver",
				Severity: severity.SeverityWarning,
			},
			contains: []string{"⚠", "info.version"},
		},
		{
			name: "info severity",
			issue: Issue{
				Path:     "components.schemas.TaskPage",
				Message:  "skipped: not an object schema",
				Severity: severity.SeverityInfo,
			},
			contains: []string{"ℹ", "skipped: not an object schema"},
		},
		{
			name: "line and column included when known",
			issue: Issue{
				Path:     "paths./tasks",
				Message:  "duplicate path",
				Severity: severity.SeverityWarning,
				Line:     12,
				Column:   3,
			},
			contains: []string{"(line 12, col 3)"},
		},
		{
			name: "context appended on its own line",
			issue: Issue{
				Path:     "paths./tasks.get",
				Message:  "collision",
				Severity: severity.SeverityWarning,
				Context:  "earlier method wins",
			},
			contains: []string{"\n    Context: earlier method wins"},
		},
		{
			name: "operation context appears after the path",
			issue: Issue{
				Path:     "paths./tasks/{id}.get",
				Message:  "name collision",
				Severity: severity.SeverityWarning,
				OperationContext: &OperationContext{
					Method: "GET",
					Path:   "/tasks/{id}",
				},
			},
			contains: []string{"paths./tasks/{id}.get (GET /tasks/{id})"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.issue.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, not := range tt.notContains {
				assert.NotContains(t, out, not)
			}
		})
	}
}

func TestIssueLocation(t *testing.T) {
	t.Run("falls back to the dotted path", func(t *testing.T) {
		i := Issue{Path: "paths./tasks.get"}
		assert.Equal(t, "paths./tasks.get", i.Location())
		assert.False(t, i.HasLocation())
	})

	t.Run("line and column only", func(t *testing.T) {
		i := Issue{Path: "paths./tasks.get", Line: 4, Column: 7}
		assert.Equal(t, "4:7", i.Location())
		assert.True(t, i.HasLocation())
	})

	t.Run("file prefixed when set", func(t *testing.T) {
		i := Issue{File: "api.yaml", Line: 4, Column: 7}
		assert.Equal(t, "api.yaml:4:7", i.Location())
	})
}
