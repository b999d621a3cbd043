package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_FILE", "DB", "AUDIT", "EXPORT_DIR", "KEEP_STALE_SECTIONS"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Audit)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.False(t, cfg.KeepStaleSections)
	assert.Empty(t, cfg.DBPath)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REGISTRAME_LOG_LEVEL", " DEBUG ")
	t.Setenv("REGISTRAME_AUDIT", "false")
	t.Setenv("REGISTRAME_EXPORT_DIR", "/tmp/planes")
	t.Setenv("REGISTRAME_KEEP_STALE_SECTIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Audit)
	assert.Equal(t, "/tmp/planes", cfg.ExportDir)
	assert.True(t, cfg.KeepStaleSections)
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("REGISTRAME_AUDIT", "maybe")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("REGISTRAME_EXPORT_DIR=from-file\nREGISTRAME_LOG_LEVEL=warn\n"), 0o644))

	// Already-set variables win over the file.
	t.Setenv("REGISTRAME_LOG_LEVEL", "error")
	t.Cleanup(func() { os.Unsetenv("REGISTRAME_EXPORT_DIR") })

	loaded, err := LoadEnvFiles(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, loaded)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.ExportDir)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{DBPath: filepath.Join(dir, "sub", "audit.db")}
	p, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, cfg.DBPath, p)
	assert.DirExists(t, filepath.Join(dir, "sub"))

	t.Setenv("XDG_DATA_HOME", dir)
	p, err = (&Config{}).ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "registrame", "registrame.db"), p)
}

func TestResolveLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := (&Config{}).ResolveLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "registrame", "registrame.log"), p)

	p, err = (&Config{LogFile: "-"}).ResolveLogFile()
	require.NoError(t, err)
	assert.Empty(t, p)

	custom := filepath.Join(dir, "logs", "tui.log")
	p, err = (&Config{LogFile: custom}).ResolveLogFile()
	require.NoError(t, err)
	assert.Equal(t, custom, p)
}
