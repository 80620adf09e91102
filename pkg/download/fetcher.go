// Package download streams remote corpus files to disk and verifies their
// content digests.
package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rattanarit/pythainlp/pkg/errors"
	"github.com/rattanarit/pythainlp/pkg/fsutil"
)

// ChunkSize is the read size used when streaming a response body to disk.
const ChunkSize = 64 * 1024 // 64 KiB

// UnknownSize is the total reported when the response carries no Content-Length.
const UnknownSize int64 = -1

// Fetcher downloads remote files over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a download fetcher with the given timeout and user agent.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = "pythainlp-data/1.0"
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FetchToFile streams the body at rawURL to dst in ChunkSize chunks,
// truncating any existing content. It returns the total size from the
// Content-Length header, UnknownSize when the server did not provide one.
// Progress reporting is best effort and never affects the outcome; a nil
// progress is allowed.
func (f *Fetcher) FetchToFile(ctx context.Context, rawURL, dst string, progress Progress) (int64, error) {
	if progress == nil {
		progress = NopProgress{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDownloadFailed, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.Wrapf(errors.ErrDownloadFailed, "unexpected status code: %d", resp.StatusCode)
	}

	total := resp.ContentLength // -1 when unknown; tolerated, not an error

	if err := fsutil.EnsureFileDir(dst); err != nil {
		return 0, errors.Wrap(err, "could not create download directory")
	}

	file, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return 0, errors.Wrapf(err, "could not create %s", dst)
	}
	defer func() { _ = file.Close() }()

	progress.Start(total)
	if err := copyChunks(file, resp.Body, progress); err != nil {
		return 0, err
	}
	if err := file.Sync(); err != nil {
		return 0, errors.Wrap(err, "could not sync file")
	}
	progress.Done()

	return total, nil
}

// copyChunks reads the body chunk by chunk, skipping empty reads.
func copyChunks(dst io.Writer, src io.Reader, progress Progress) error {
	buf := make([]byte, ChunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return errors.Wrap(werr, "could not write file")
			}
			progress.Advance(int64(n))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrDownloadFailed, err.Error())
		}
	}
}
