// Package store provides the JSON-backed local metadata store tracking
// installed corpora. Each record maps a corpus name to the version that was
// downloaded and the file it was saved under. The backing file is read on
// Open and rewritten atomically on every mutation, so no file handle is held
// between operations and callers must not assume read-then-write atomicity.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rattanarit/pythainlp/pkg/errors"
	"github.com/rattanarit/pythainlp/pkg/fsutil"
)

// FormatVersion is the on-disk format version written into new store files.
const FormatVersion = "1"

// Record is one installed corpus: at most one record exists per Name.
// Foldername is only set for corpora whose payload was unpacked from an
// archive.
type Record struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	FileName   string `json:"file_name"`
	Foldername string `json:"foldername,omitempty"`
}

type document struct {
	FormatVersion string    `json:"format_version"`
	LastUpdate    time.Time `json:"last_update"`
	Records       []Record  `json:"records"`
}

// DB is a handle on the metadata store. Mutations persist immediately;
// reads operate on the snapshot loaded by Open.
type DB struct {
	path string
	doc  document
}

// Open loads the store from path. A missing file yields an empty store.
func Open(path string) (*DB, error) {
	cleanPath := filepath.Clean(path)
	if cleanPath == "" || cleanPath == "." {
		return nil, errors.Wrap(errors.ErrInvalidPath, "store path cannot be empty")
	}

	db := &DB{
		path: cleanPath,
		doc: document{
			FormatVersion: FormatVersion,
			LastUpdate:    time.Now(),
		},
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return db, nil
		}
		return nil, errors.Wrapf(err, "failed to open store file %s", cleanPath)
	}

	if err := json.Unmarshal(data, &db.doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse store file %s", cleanPath)
	}

	return db, nil
}

// Find returns the record for name, matching exactly.
func (db *DB) Find(name string) (Record, bool) {
	for _, rec := range db.doc.Records {
		if rec.Name == name {
			return rec, true
		}
	}
	return Record{}, false
}

// FindVersion returns the record matching both name and version exactly.
func (db *DB) FindVersion(name, version string) (Record, bool) {
	for _, rec := range db.doc.Records {
		if rec.Name == name && rec.Version == version {
			return rec, true
		}
	}
	return Record{}, false
}

// Records returns a copy of all records.
func (db *DB) Records() []Record {
	records := make([]Record, len(db.doc.Records))
	copy(records, db.doc.Records)
	return records
}

// Insert adds a record, replacing any existing record with the same name.
func (db *DB) Insert(rec Record) error {
	for i, existing := range db.doc.Records {
		if existing.Name == rec.Name {
			db.doc.Records[i] = rec
			return db.save()
		}
	}
	db.doc.Records = append(db.doc.Records, rec)
	return db.save()
}

// UpdateVersion changes the version field of the record for name.
func (db *DB) UpdateVersion(name, version string) error {
	for i, rec := range db.doc.Records {
		if rec.Name == name {
			db.doc.Records[i].Version = version
			return db.save()
		}
	}
	return errors.Wrapf(errors.ErrCorpusNotFound, "no record for %s", name)
}

// Remove deletes the record for name. It reports whether a record was removed.
func (db *DB) Remove(name string) (bool, error) {
	for i, rec := range db.doc.Records {
		if rec.Name == name {
			db.doc.Records = append(db.doc.Records[:i], db.doc.Records[i+1:]...)
			if err := db.save(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// save writes the store atomically via a temp file in the same directory.
func (db *DB) save() (err error) {
	db.doc.LastUpdate = time.Now()
	if db.doc.FormatVersion == "" {
		db.doc.FormatVersion = FormatVersion
	}

	if err := fsutil.EnsureFileDir(db.path); err != nil {
		return errors.Wrap(err, "could not create store directory")
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(db.path), "pythainlp-db-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary store file")
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	data, err := json.MarshalIndent(&db.doc, "", "  ")
	if err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(err, "failed to marshal store to JSON")
	}

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(err, "failed to write temporary store file")
	}
	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(err, "failed to sync temporary store file")
	}
	if err = tmpFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close temporary store file")
	}

	if err = os.Rename(tmpPath, db.path); err != nil {
		return errors.Wrapf(err, "failed to rename temporary store file to %s", db.path)
	}

	return nil
}
