package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupParseFlags(t *testing.T) {
	fs, flags := SetupParseFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.NoValidate, "expected NoValidate to be false by default")
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, FormatText, flags.Format, "expected Format to default to text")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--no-validate", "-q", "--format", "json", "test.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.NoValidate, "expected NoValidate to be true")
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "test.yaml", fs.Arg(0))
	})
}

func TestHandleParse_NoArgs(t *testing.T) {
	err := HandleParse([]string{})
	assert.Error(t, err)
}

func TestHandleParse_Help(t *testing.T) {
	err := HandleParse([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleParse_InvalidFormat(t *testing.T) {
	err := HandleParse([]string{"--format", "xml", "test.yaml"})
	assert.Error(t, err)
}
