package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rattanarit/pythainlp/pkg/errors"
)

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleCatalog))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, "")
	doc, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	_, ok := doc.Entry("ttc")
	assert.True(t, ok)
}

func TestClientFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, "")
	_, err := client.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, errors.ErrCatalogUnavailable)
}

func TestClientFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(time.Second, "")
	_, err := client.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, errors.ErrCatalogUnavailable)
}

func TestClientFetchInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, "")
	_, err := client.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, errors.ErrCatalogParse)
}
