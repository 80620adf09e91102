package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	db, err := Open(path)
	require.NoError(t, err)
	return db, path
}

func TestOpenMissingFileYieldsEmptyStore(t *testing.T) {
	db, _ := openTestDB(t)
	assert.Empty(t, db.Records())

	_, found := db.Find("ttc")
	assert.False(t, found)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestInsertAndFind(t *testing.T) {
	db, path := openTestDB(t)

	rec := Record{Name: "ttc", Version: "1.0", FileName: "ttc_freq.txt"}
	require.NoError(t, db.Insert(rec))

	got, found := db.Find("ttc")
	assert.True(t, found)
	assert.Equal(t, rec, got)

	// Exact-match semantics: name lookup is case-sensitive
	_, found = db.Find("TTC")
	assert.False(t, found)

	// Persisted across reopen
	reopened, err := Open(path)
	require.NoError(t, err)
	got, found = reopened.Find("ttc")
	assert.True(t, found)
	assert.Equal(t, rec, got)
}

func TestInsertReplacesSameName(t *testing.T) {
	db, _ := openTestDB(t)

	require.NoError(t, db.Insert(Record{Name: "ttc", Version: "1.0", FileName: "ttc_freq.txt"}))
	require.NoError(t, db.Insert(Record{Name: "ttc", Version: "2.0", FileName: "ttc_freq.txt"}))

	assert.Len(t, db.Records(), 1)
	got, _ := db.Find("ttc")
	assert.Equal(t, "2.0", got.Version)
}

func TestFindVersion(t *testing.T) {
	db, _ := openTestDB(t)
	require.NoError(t, db.Insert(Record{Name: "ttc", Version: "1.0", FileName: "ttc_freq.txt"}))

	_, found := db.FindVersion("ttc", "1.0")
	assert.True(t, found)

	_, found = db.FindVersion("ttc", "2.0")
	assert.False(t, found)

	_, found = db.FindVersion("wiki", "1.0")
	assert.False(t, found)
}

func TestUpdateVersion(t *testing.T) {
	db, path := openTestDB(t)
	require.NoError(t, db.Insert(Record{Name: "ttc", Version: "1.0", FileName: "ttc_freq.txt"}))

	require.NoError(t, db.UpdateVersion("ttc", "2.0"))

	reopened, err := Open(path)
	require.NoError(t, err)
	got, found := reopened.Find("ttc")
	assert.True(t, found)
	assert.Equal(t, "2.0", got.Version)
	assert.Equal(t, "ttc_freq.txt", got.FileName)

	assert.Error(t, db.UpdateVersion("unknown", "1.0"))
}

func TestRemove(t *testing.T) {
	db, path := openTestDB(t)
	require.NoError(t, db.Insert(Record{Name: "ttc", Version: "1.0", FileName: "ttc_freq.txt"}))

	removed, err := db.Remove("ttc")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = db.Remove("ttc")
	require.NoError(t, err)
	assert.False(t, removed)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, reopened.Records())
}

func TestSaveWritesEnvelopeAndLeavesNoTempFiles(t *testing.T) {
	db, path := openTestDB(t)
	require.NoError(t, db.Insert(Record{Name: "ttc", Version: "1.0", FileName: "ttc_freq.txt"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, FormatVersion, doc["format_version"])
	assert.Contains(t, doc, "last_update")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
