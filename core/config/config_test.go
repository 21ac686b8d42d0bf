package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "movies.db", cfg.Database.Name)
	assert.Equal(t, "https://api.themoviedb.org/3/search/movie", cfg.Catalog.SearchURL)
	assert.Equal(t, "https://mymoviesprint.firebaseio.com/", cfg.Remote.BaseURL)
	assert.Equal(t, 4, cfg.Remote.Workers)
	assert.Equal(t, "movies", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_API_KEY", "secret")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("REMOTE_WORKERS", "9")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Catalog.APIKey)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 9, cfg.Remote.Workers)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9191\nSTORAGE_BUCKET=archive\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Unsetenv("SERVER_PORT")
		_ = os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "archive", cfg.Storage.Bucket)
}
