package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides_Store(t *testing.T) {
	t.Run("MEASURE_STORE_BACKEND overrides default", func(t *testing.T) {
		t.Setenv("MEASURE_STORE_BACKEND", "sqlite")
		t.Setenv("MEASURE_STORE_PATH", "/var/lib/measure/prefs.db")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, BackendSQLite, cfg.Store.Backend)
		assert.Equal(t, "/var/lib/measure/prefs.db", cfg.StorePath())
	})

	t.Run("empty variable keeps file value", func(t *testing.T) {
		t.Setenv("MEASURE_STORE_BACKEND", "")

		cfg := &Config{Store: StoreConfig{Backend: BackendMemory}}
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, BackendMemory, cfg.Store.Backend)
	})

	t.Run("env wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: file\n"), 0644))
		t.Setenv("MEASURE_STORE_BACKEND", "memory")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, BackendMemory, cfg.Store.Backend)
	})
}

func TestEnvOverrides_LoggingAndDisplay(t *testing.T) {
	t.Setenv("MEASURE_LOG_LEVEL", "debug")
	t.Setenv("MEASURE_LOG_FORMAT", "json")
	t.Setenv("MEASURE_LOG_FILE", "/tmp/measure.log")
	t.Setenv("MEASURE_LOCALE", "fr-FR")

	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnvOverrides())

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/measure.log", cfg.Logging.File)
	assert.Equal(t, "fr-FR", cfg.Display.Locale)
}
