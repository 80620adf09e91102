//go:generate mockgen -destination=./mocks/corpus.go . CatalogFetcher,FileFetcher

// Package corpus manages the local cache of downloadable corpus files:
// catalog lookup, download with integrity check, local metadata tracking,
// and removal.
package corpus

import (
	"context"
	"os"
	"strings"

	"github.com/rattanarit/pythainlp/internal/logger"
	"github.com/rattanarit/pythainlp/pkg/archive"
	"github.com/rattanarit/pythainlp/pkg/catalog"
	"github.com/rattanarit/pythainlp/pkg/config"
	"github.com/rattanarit/pythainlp/pkg/download"
	"github.com/rattanarit/pythainlp/pkg/errors"
	"github.com/rattanarit/pythainlp/pkg/fsutil"
	"github.com/rattanarit/pythainlp/pkg/hooks"
	"github.com/rattanarit/pythainlp/pkg/store"
)

// CatalogFetcher is the subset of the catalog client used by the manager.
type CatalogFetcher interface {
	Fetch(ctx context.Context, url string) (catalog.Document, error)
}

// FileFetcher is the subset of the download fetcher used by the manager.
type FileFetcher interface {
	FetchToFile(ctx context.Context, url, dst string, progress download.Progress) (int64, error)
}

// Manager ties the catalog client, downloader, metadata store and hooks
// together. All operations are synchronous and blocking; the metadata store
// is reopened around every operation.
type Manager struct {
	Catalog  CatalogFetcher
	Fetcher  FileFetcher
	Hooks    hooks.Manager     // optional; nil disables hook execution
	Progress download.Progress // optional; nil disables progress reporting

	cfg *config.Config
}

// DownloadOptions control a single Download call.
type DownloadOptions struct {
	// Force re-downloads even when the requested version is already installed.
	Force bool

	// URL overrides the configured catalog URL.
	URL string

	// Version selects a specific version; empty means the catalog's latest.
	Version string
}

// New creates a Manager wired with the real catalog client and fetcher.
// When hooks are enabled in the config, scripts are loaded from the hooks
// directory; load failures disable hooks with a warning rather than breaking
// the manager.
func New(cfg *config.Config) *Manager {
	m := &Manager{
		Catalog:  catalog.NewClient(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent),
		Fetcher:  download.NewFetcher(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent),
		Progress: download.NopProgress{},
		cfg:      cfg,
	}

	if cfg.Settings.EnableHooks {
		executor := hooks.NewTengoExecutor()
		if err := hooks.LoadFromDir(executor, cfg.GetHooksDir()); err != nil {
			logger.Warnf("Failed to load hooks from %s: %v", cfg.GetHooksDir(), err)
		} else {
			m.Hooks = executor
		}
	}

	return m
}

// GetCorpusDBDetail returns the local record for a corpus. The zero record
// plus false is the normal outcome for an uninstalled corpus, not an error.
func (m *Manager) GetCorpusDBDetail(name string) (store.Record, bool) {
	name = strings.ToLower(name)
	db, err := store.Open(m.cfg.GetDatabasePath())
	if err != nil {
		logger.Warnf("Cannot open local corpus store: %v", err)
		return store.Record{}, false
	}
	return db.Find(name)
}

// GetCorpus reads a plain-text corpus file and returns the distinct set of
// its lines. A UTF-8 byte-order mark is stripped. Relative file names
// resolve under the configured data directory.
func (m *Manager) GetCorpus(fileName string) (map[string]struct{}, error) {
	path := m.cfg.GetFullDataPath(fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read corpus file %s", path)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		set[strings.TrimSuffix(line, "\r")] = struct{}{}
	}
	return set, nil
}

// GetCorpusPath resolves the on-disk path of a corpus, downloading it first
// when it is not installed or its file went missing. The path is returned
// only when the file exists on disk afterwards; absent is a normal outcome.
func (m *Manager) GetCorpusPath(ctx context.Context, name string) (string, bool) {
	rec, ok := m.GetCorpusDBDetail(name)
	if !ok || rec.FileName == "" {
		m.Download(ctx, name, DownloadOptions{})
		rec, ok = m.GetCorpusDBDetail(name)
	}

	if ok && rec.FileName != "" {
		path := m.cfg.GetFullDataPath(rec.FileName)
		if !fsutil.Exists(path) {
			m.Download(ctx, name, DownloadOptions{})
		}
		if fsutil.Exists(path) {
			return path, true
		}
	}

	return "", false
}

// Download fetches a corpus according to opts. It returns true whenever the
// corpus name was found in the catalog, including the "already up to date"
// case where no file transfer happens. All failures surface as a status
// message plus false; nothing escapes to the caller.
func (m *Manager) Download(ctx context.Context, name string, opts DownloadOptions) bool {
	name = strings.ToLower(name)
	url := opts.URL
	if url == "" {
		url = m.cfg.Settings.CatalogURL
	}

	doc, err := m.Catalog.Fetch(ctx, url)
	if err != nil {
		logger.Errorf("Cannot download corpus catalog from: %s (%v)", url, err)
		return false
	}

	entry, found := doc.Entry(name)
	if !found {
		logger.Infof("Corpus not found: %s", name)
		return false
	}

	logger.Infof("Corpus: %s", name)
	version, info, err := entry.Resolve(opts.Version)
	if err != nil {
		logger.Errorf("Cannot resolve version for %s: %v", name, err)
		return false
	}

	db, err := store.Open(m.cfg.GetDatabasePath())
	if err != nil {
		logger.Errorf("Cannot open local corpus store: %v", err)
		return false
	}

	// No implicit upgrade: a record under a different version only reports
	// the delta unless force is set.
	existing, hasRecord := db.Find(name)

	if opts.Force || !hasRecord {
		if !m.fetchAndRegister(ctx, db, name, version, info, hasRecord) {
			return false
		}
		return true
	}

	m.reportUpToDate(existing.Version, version)
	return true
}

// fetchAndRegister performs the download, integrity check, optional archive
// extraction, and store update for one corpus version.
func (m *Manager) fetchAndRegister(ctx context.Context, db *store.DB, name, version string, info catalog.VersionInfo, hasRecord bool) bool {
	logger.Infof("- Downloading: %s %s", name, version)

	dst := m.cfg.GetFullDataPath(info.Filename)
	hookCtx := hooks.HookContext{
		CorpusName:    name,
		CorpusVersion: version,
		CorpusPath:    dst,
		DataDir:       m.cfg.Settings.DataDir,
	}

	if m.Hooks != nil {
		if err := m.Hooks.Execute(hooks.PreDownload, hookCtx); err != nil {
			logger.Errorf("Pre-download hook rejected %s: %v", name, err)
			return false
		}
	}

	if _, err := m.Fetcher.FetchToFile(ctx, info.DownloadURL, dst, m.Progress); err != nil {
		logger.Errorf("Download failed for %s: %v", name, err)
		return false
	}

	// Integrity failure is fatal to this call: the file stays unregistered.
	if err := download.VerifyChecksum(dst, info.MD5); err != nil {
		logger.Errorf("Integrity check failed for %s: %v", name, err)
		return false
	}

	if info.Foldername != "" {
		if err := archive.Extract(ctx, dst, m.cfg.GetFullDataPath(info.Foldername)); err != nil {
			logger.Errorf("Cannot unpack %s: %v", name, err)
			return false
		}
	}

	// An existing record only has its version mutated; a fresh download
	// inserts the full record.
	if hasRecord {
		if err := db.UpdateVersion(name, version); err != nil {
			logger.Errorf("Cannot update record for %s: %v", name, err)
			return false
		}
	} else {
		rec := store.Record{Name: name, Version: version, FileName: info.Filename, Foldername: info.Foldername}
		if err := db.Insert(rec); err != nil {
			logger.Errorf("Cannot store record for %s: %v", name, err)
			return false
		}
	}

	if m.Hooks != nil {
		if err := m.Hooks.Execute(hooks.PostDownload, hookCtx); err != nil {
			logger.Warnf("Post-download hook failed for %s: %v", name, err)
		}
	}

	return true
}

// reportUpToDate tells the user whether their installed version matches the
// requested one, and how to upgrade when it does not.
func (m *Manager) reportUpToDate(installed, requested string) {
	if installed == requested {
		logger.Infof("- Already up to date.")
		return
	}

	logger.Infof("- Existing version: %s", installed)
	if catalog.CompareVersions(installed, requested) < 0 {
		logger.Infof("- New version available: %s", requested)
	} else {
		logger.Infof("- Requested version %s is older than the installed %s", requested, installed)
	}
	logger.Infof("- Re-run the download with force enabled to replace it")
}

// Remove deletes a corpus file and its local record. Unknown names return
// false with the store untouched. A file that is already gone from disk is
// reported as a warning; record removal still completes.
func (m *Manager) Remove(ctx context.Context, name string) bool {
	name = strings.ToLower(name)
	db, err := store.Open(m.cfg.GetDatabasePath())
	if err != nil {
		logger.Errorf("Cannot open local corpus store: %v", err)
		return false
	}

	rec, found := db.Find(name)
	if !found {
		return false
	}

	path := m.cfg.GetFullDataPath(rec.FileName)
	hookCtx := hooks.HookContext{
		CorpusName:    name,
		CorpusVersion: rec.Version,
		CorpusPath:    path,
		DataDir:       m.cfg.Settings.DataDir,
	}

	if m.Hooks != nil {
		if err := m.Hooks.Execute(hooks.PreRemove, hookCtx); err != nil {
			logger.Errorf("Pre-remove hook rejected %s: %v", name, err)
			return false
		}
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("Corpus file already removed: %s", path)
		} else {
			logger.Errorf("Cannot remove %s: %v", path, err)
			return false
		}
	}

	if rec.Foldername != "" {
		// Best effort; a missing or half-removed directory is not fatal.
		if err := os.RemoveAll(m.cfg.GetFullDataPath(rec.Foldername)); err != nil {
			logger.Warnf("Cannot remove unpacked directory for %s: %v", name, err)
		}
	}

	removed, err := db.Remove(name)
	if err != nil {
		logger.Errorf("Cannot remove record for %s: %v", name, err)
		return false
	}

	if m.Hooks != nil {
		if err := m.Hooks.Execute(hooks.PostRemove, hookCtx); err != nil {
			logger.Warnf("Post-remove hook failed for %s: %v", name, err)
		}
	}

	return removed
}
