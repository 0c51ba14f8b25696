package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigDefaults(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("CATALOG_LOCAL_PATH", dataDir)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Progress.Driver)
	assert.Equal(t, "course_progress", cfg.Progress.StorageKey)
	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 10*time.Second, cfg.Ads.LoadTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Playback.SessionIdleTimeout)
	assert.Empty(t, cfg.ConfigFile)

	_, err = os.Stat(filepath.Join(dataDir, "courses"))
	assert.NoError(t, err, "local catalog directory is created")
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, `
server:
  port: "9090"
progress:
  driver: gorm
  storage_key: progress_doc
catalog:
  local_path: `+filepath.ToSlash(dir)+`
ads:
  load_timeout: 3s
  skip_delay: 7
cors:
  allowed_origins:
    - http://localhost:3000
`)
	t.Setenv("PROGRESS_DRIVER", "redis")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Progress.Driver)
	assert.Equal(t, "progress_doc", cfg.Progress.StorageKey)
	assert.Equal(t, 3*time.Second, cfg.Ads.LoadTimeout)
	assert.Equal(t, 7, cfg.Ads.SkipDelay)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "server: [unterminated\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Mode: "debug"},
			Progress: ProgressConfig{Driver: "memory", StorageKey: "course_progress"},
			Catalog:  CatalogConfig{Source: "local"},
		}
	}
	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Progress.Driver = "mongo"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Catalog.Source = "s3"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Progress.StorageKey = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Mode = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Mode = "release"
	cfg.JWT.Secret = "short"
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())
}
