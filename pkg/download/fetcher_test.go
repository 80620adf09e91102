package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rattanarit/pythainlp/pkg/errors"
)

// recordingProgress captures progress callbacks for assertions.
type recordingProgress struct {
	total    int64
	advanced int64
	started  bool
	done     bool
}

func (p *recordingProgress) Start(total int64) { p.started = true; p.total = total }
func (p *recordingProgress) Advance(n int64)   { p.advanced += n }
func (p *recordingProgress) Done()             { p.done = true }

func TestFetchToFile(t *testing.T) {
	payload := strings.Repeat("thai corpus data\n", 100)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "corpus", "ttc_freq.txt")
	progress := &recordingProgress{}

	fetcher := NewFetcher(5*time.Second, "")
	total, err := fetcher.FetchToFile(context.Background(), server.URL, dst, progress)
	require.NoError(t, err)

	assert.Equal(t, int64(len(payload)), total)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))

	assert.True(t, progress.started)
	assert.True(t, progress.done)
	assert.Equal(t, int64(len(payload)), progress.advanced)
	assert.Equal(t, int64(len(payload)), progress.total)
}

func TestFetchToFileUnknownLength(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Flushing before writing forces chunked encoding without Content-Length
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte("streamed body"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "out.bin")
	progress := &recordingProgress{}

	fetcher := NewFetcher(5*time.Second, "")
	total, err := fetcher.FetchToFile(context.Background(), server.URL, dst, progress)
	require.NoError(t, err)

	assert.Equal(t, UnknownSize, total)
	assert.Equal(t, UnknownSize, progress.total)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "streamed body", string(got))
}

func TestFetchToFileNilProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "out.txt")
	fetcher := NewFetcher(5*time.Second, "")
	_, err := fetcher.FetchToFile(context.Background(), server.URL, dst, nil)
	assert.NoError(t, err)
}

func TestFetchToFileTruncatesExisting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("new"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), 0o644))

	fetcher := NewFetcher(5*time.Second, "")
	_, err := fetcher.FetchToFile(context.Background(), server.URL, dst, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestFetchToFileServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "")
	_, err := fetcher.FetchToFile(context.Background(), server.URL, filepath.Join(t.TempDir(), "x"), nil)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
}

func TestConsoleProgress(t *testing.T) {
	t.Run("KnownTotal", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewConsoleProgress(buf)
		p.Start(100)
		p.Advance(50)
		p.Advance(50)
		p.Done()
		assert.Contains(t, buf.String(), "100%")
	})

	t.Run("UnknownTotalPrintsDone", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewConsoleProgress(buf)
		p.Start(UnknownSize)
		p.Advance(1024)
		p.Done()
		assert.Equal(t, "Done.\n", buf.String())
	})
}
