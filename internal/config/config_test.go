package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("TASTEMAKER_SPOTIFY_CLIENT_ID", "test-id")
	t.Setenv("TASTEMAKER_SPOTIFY_CLIENT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "data/catalog.csv", cfg.Catalog.Path)
	assert.Equal(t, 10*time.Second, cfg.Spotify.Timeout)
	assert.Equal(t, 3, cfg.Spotify.MaxRetries)
	assert.Equal(t, 10, cfg.Recommend.DefaultLimit)
	assert.Equal(t, 100, cfg.Recommend.MaxLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Cache.Path, "caching is off unless a path is set")
}

func TestLoadMissingCredentials(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadEnvOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("TASTEMAKER_HTTP_ADDR", ":9090")
	t.Setenv("TASTEMAKER_CATALOG_PATH", "/srv/tracks.csv")
	t.Setenv("TASTEMAKER_DEFAULT_LIMIT", "5")
	t.Setenv("TASTEMAKER_LOG_LEVEL", "debug")
	t.Setenv("TASTEMAKER_SPOTIFY_TIMEOUT", "30s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "/srv/tracks.csv", cfg.Catalog.Path)
	assert.Equal(t, 5, cfg.Recommend.DefaultLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.Spotify.Timeout)
}

func TestLoadUnmappedEnvIgnored(t *testing.T) {
	setCredentials(t)
	t.Setenv("TASTEMAKER_NO_SUCH_KEY", "whatever")

	_, err := Load("")
	assert.NoError(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	setCredentials(t)

	path := filepath.Join(t.TempDir(), "tastemaker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":7070"
catalog:
  path: /data/songs.csv
recommend:
  default_limit: 7
  max_limit: 20
cache:
  path: /tmp/tastemaker.db
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "/data/songs.csv", cfg.Catalog.Path)
	assert.Equal(t, 7, cfg.Recommend.DefaultLimit)
	assert.Equal(t, 20, cfg.Recommend.MaxLimit)
	assert.Equal(t, "/tmp/tastemaker.db", cfg.Cache.Path)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	setCredentials(t)
	t.Setenv("TASTEMAKER_HTTP_ADDR", ":6060")

	path := filepath.Join(t.TempDir(), "tastemaker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":7070\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.HTTP.Addr)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	setCredentials(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidLimits(t *testing.T) {
	setCredentials(t)
	t.Setenv("TASTEMAKER_DEFAULT_LIMIT", "50")
	t.Setenv("TASTEMAKER_MAX_LIMIT", "10")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
