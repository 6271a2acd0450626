package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{"port": 8080, "database_path": "/tmp/jobs.db", "upload_dir": "/tmp/uploads", "max_items": 5}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/tmp/jobs.db", cfg.DatabasePath)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
	assert.Equal(t, 5, cfg.MaxItems)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/data/jobs.db")
	t.Setenv("UPLOAD_DIR", "/data/uploads")

	cfg := FromEnv()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/data/jobs.db", cfg.DatabasePath)
	assert.Equal(t, "/data/uploads", cfg.UploadDir)
}

func TestFromEnv_InvalidPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := FromEnv()

	assert.Zero(t, cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero config", Config{}, false},
		{"valid port", Config{Port: 8080}, false},
		{"port too large", Config{Port: 70000}, true},
		{"negative port", Config{Port: -1}, true},
		{"negative max items", Config{MaxItems: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 8080}
	defaults := Config{Port: 9000, DatabasePath: "/data/jobs.db", MaxItems: 3}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "/data/jobs.db", merged.DatabasePath)
	assert.Equal(t, DefaultUploadDir, merged.UploadDir)
	assert.Equal(t, 3, merged.MaxItems)
}

func TestMergeWithDefaults_HardDefaults(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultDatabasePath, merged.DatabasePath)
	assert.Equal(t, DefaultUploadDir, merged.UploadDir)
}
