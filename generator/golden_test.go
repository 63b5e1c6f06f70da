package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// TestGoldenUsersAPI compares the full generated output against the checked-in
// golden archive. Update testdata/golden/users-api.txtar when the emitted
// shape intentionally changes.
func TestGoldenUsersAPI(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/golden/users-api.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, archive.Files, "golden archive must list the expected output files")

	result, err := GenerateWithOptions(
		WithFilePath("../testdata/users-api.yaml"),
	)
	require.NoError(t, err)

	require.Len(t, result.Files, len(archive.Files), "generated output and golden archive must list the same files")
	for _, golden := range archive.Files {
		generated := result.GetFile(golden.Name)
		require.NotNil(t, generated, "missing generated file %s", golden.Name)
		assert.Equal(t, string(golden.Data), string(generated.Content), "content mismatch for %s", golden.Name)
	}
}
