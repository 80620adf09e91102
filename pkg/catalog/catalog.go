// Package catalog fetches and parses the remote corpus catalog: a JSON
// document mapping corpus names to their available versions and download
// metadata.
package catalog

import (
	"encoding/json"
	"io"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/rattanarit/pythainlp/pkg/errors"
)

// ChecksumSentinel in a version's md5 field means the integrity check is skipped.
const ChecksumSentinel = "-"

// VersionInfo describes one downloadable version of a corpus.
type VersionInfo struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	MD5         string `json:"md5"`

	// Foldername, when set, marks the payload as an archive that is
	// unpacked into this directory under the data dir after download.
	Foldername string `json:"foldername,omitempty"`
}

// Entry is one corpus in the catalog.
type Entry struct {
	LatestVersion string                 `json:"latest_version"`
	Versions      map[string]VersionInfo `json:"versions"`
}

// Document is the parsed catalog, keyed by corpus name. Published catalogs
// use lower-case keys.
type Document map[string]*Entry

// ParseDocument parses a catalog from JSON data.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCatalogParse, err.Error())
	}
	return doc, nil
}

// ParseDocumentFromReader parses a catalog from an io.Reader.
func ParseDocumentFromReader(reader io.Reader) (Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog data")
	}
	return ParseDocument(data)
}

// Entry looks up a corpus by name. Both sides are normalized to lower case,
// so lookups are case-insensitive against the catalog's lower-cased keys.
func (d Document) Entry(name string) (*Entry, bool) {
	if entry, ok := d[strings.ToLower(name)]; ok {
		return entry, true
	}
	for key, entry := range d {
		if strings.EqualFold(key, name) {
			return entry, true
		}
	}
	return nil, false
}

// Resolve maps a requested version to its VersionInfo. An empty version
// resolves to the entry's latest_version; when that is also empty the highest
// parseable version wins.
func (e *Entry) Resolve(version string) (string, VersionInfo, error) {
	if version == "" {
		version = e.LatestVersion
	}
	if version == "" {
		version = e.highestVersion()
	}
	if version == "" {
		return "", VersionInfo{}, errors.Wrap(errors.ErrVersionNotFound, "catalog entry has no versions")
	}

	info, ok := e.Versions[version]
	if !ok {
		return "", VersionInfo{}, errors.Wrapf(errors.ErrVersionNotFound, "version %s", version)
	}
	return version, info, nil
}

// highestVersion returns the largest parseable version key, or "" if none parse.
func (e *Entry) highestVersion() string {
	var best *goversion.Version
	var bestRaw string
	for raw := range e.Versions {
		v, err := goversion.NewVersion(raw)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestRaw = raw
		}
	}
	return bestRaw
}

// CompareVersions reports -1, 0 or 1 for installed relative to available.
// Versions that do not parse compare as plain strings.
func CompareVersions(installed, available string) int {
	iv, ierr := goversion.NewVersion(installed)
	av, aerr := goversion.NewVersion(available)
	if ierr != nil || aerr != nil {
		return strings.Compare(installed, available)
	}
	return iv.Compare(av)
}
