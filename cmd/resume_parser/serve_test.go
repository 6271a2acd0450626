package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/config"
)

func resetServeFlags(t *testing.T) {
	t.Helper()

	serveConfigPath = ""
	servePort = 0
	serveDBPath = ""
	serveUploadDir = ""
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("UPLOAD_DIR", "")
}

func writeServeConfig(t *testing.T, cfg config.Config) string {
	t.Helper()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestResolveServeConfig_Defaults(t *testing.T) {
	resetServeFlags(t)

	cfg, err := resolveServeConfig()

	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, config.DefaultUploadDir, cfg.UploadDir)
}

func TestResolveServeConfig_FileProvidesValues(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = writeServeConfig(t, config.Config{Port: 4000, DatabasePath: "custom.db"})

	cfg, err := resolveServeConfig()

	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "custom.db", cfg.DatabasePath)
	assert.Equal(t, config.DefaultUploadDir, cfg.UploadDir)
}

func TestResolveServeConfig_EnvBeatsFile(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = writeServeConfig(t, config.Config{Port: 4000})
	t.Setenv("PORT", "5000")

	cfg, err := resolveServeConfig()

	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
}

func TestResolveServeConfig_FlagBeatsEnv(t *testing.T) {
	resetServeFlags(t)
	t.Setenv("PORT", "5000")
	servePort = 6000

	cfg, err := resolveServeConfig()

	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Port)
}

func TestResolveServeConfig_InvalidPort(t *testing.T) {
	resetServeFlags(t)
	servePort = 70000

	_, err := resolveServeConfig()

	assert.Error(t, err)
}

func TestResolveServeConfig_MissingConfigFile(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = filepath.Join(t.TempDir(), "absent.json")

	_, err := resolveServeConfig()

	assert.Error(t, err)
}
