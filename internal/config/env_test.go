package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	content := `# deployment settings
PROJECT_PATH=/srv/app

ENVIRONMENT = production
MALFORMED LINE
PYTHON_PATH=/py/bin/python
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// t.Setenv registers cleanup so LoadEnv's writes are undone.
	t.Setenv("PROJECT_PATH", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PYTHON_PATH", "")

	require.NoError(t, LoadEnv(path))

	assert.Equal(t, "/srv/app", os.Getenv("PROJECT_PATH"))
	assert.Equal(t, "production", os.Getenv("ENVIRONMENT"))
	assert.Equal(t, "/py/bin/python", os.Getenv("PYTHON_PATH"))
}

func TestLoadEnvMissingFile(t *testing.T) {
	err := LoadEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestLoadEnvOptional(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		err := LoadEnvOptional(filepath.Join(t.TempDir(), "absent.env"))
		assert.NoError(t, err)
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("ENVIRONMENT=staging\n"), 0644))

		t.Setenv("ENVIRONMENT", "")

		require.NoError(t, LoadEnvOptional(path))
		assert.Equal(t, "staging", os.Getenv("ENVIRONMENT"))
	})
}
