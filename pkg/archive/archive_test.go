package archive

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeZip builds a small zip fixture with the given name→content entries.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	file, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	zw := zip.NewWriter(file)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestExtract(t *testing.T) {
	tempDir := t.TempDir()
	archivePath := filepath.Join(tempDir, "corpus.zip")
	writeZip(t, archivePath, map[string]string{
		"words.txt":        "หนึ่ง\nสอง\n",
		"nested/freqs.txt": "คำ\t10\n",
	})

	destDir := filepath.Join(tempDir, "unpacked")
	require.NoError(t, Extract(context.Background(), archivePath, destDir))

	words, err := os.ReadFile(filepath.Join(destDir, "words.txt"))
	require.NoError(t, err)
	assert.Equal(t, "หนึ่ง\nสอง\n", string(words))

	freqs, err := os.ReadFile(filepath.Join(destDir, "nested", "freqs.txt"))
	require.NoError(t, err)
	assert.Equal(t, "คำ\t10\n", string(freqs))
}

func TestExtractMissingArchive(t *testing.T) {
	err := Extract(context.Background(), filepath.Join(t.TempDir(), "nope.zip"), t.TempDir())
	assert.Error(t, err)
}

func TestExtractNotAnArchive(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o644))

	err := Extract(context.Background(), path, filepath.Join(tempDir, "out"))
	assert.Error(t, err)
}
