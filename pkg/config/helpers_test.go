package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetValue("data_dir", "/srv/corpora"))
	assert.Equal(t, "/srv/corpora", cfg.Settings.DataDir)

	require.NoError(t, cfg.SetValue("http_timeout", "90s"))
	assert.Equal(t, 90*time.Second, cfg.Settings.HTTPTimeout)

	require.NoError(t, cfg.SetValue("enable_hooks", "true"))
	assert.True(t, cfg.Settings.EnableHooks)

	assert.Error(t, cfg.SetValue("http_timeout", "soon"))
	assert.Error(t, cfg.SetValue("enable_hooks", "maybe"))
	assert.Error(t, cfg.SetValue("no_such_key", "x"))
}

func TestGetValue(t *testing.T) {
	cfg := DefaultConfig()

	url, err := cfg.GetValue("catalog_url")
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalogURL, url)

	timeout, err := cfg.GetValue("http_timeout")
	require.NoError(t, err)
	assert.Equal(t, "30s", timeout)

	_, err = cfg.GetValue("no_such_key")
	assert.Error(t, err)
}

func TestToMap(t *testing.T) {
	m := DefaultConfig().ToMap()

	assert.Equal(t, DefaultCatalogURL, m["catalog_url"])
	assert.Equal(t, "30s", m["http_timeout"])
	assert.Equal(t, "false", m["enable_hooks"])
	assert.Equal(t, "info", m["log_level"])
}
