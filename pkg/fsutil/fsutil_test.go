package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()

	nested := filepath.Join(tempDir, "a", "b", "c")
	require.NoError(t, EnsureDir(nested))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Calling again on an existing directory is a no-op
	assert.NoError(t, EnsureDir(nested))
}

func TestEnsureFileDir(t *testing.T) {
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "data", "db.json")
	require.NoError(t, EnsureFileDir(filePath))

	info, err := os.Stat(filepath.Dir(filePath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExists(t *testing.T) {
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "corpus.txt")
	assert.False(t, Exists(filePath))

	require.NoError(t, os.WriteFile(filePath, []byte("data"), 0o644))
	assert.True(t, Exists(filePath))
}
