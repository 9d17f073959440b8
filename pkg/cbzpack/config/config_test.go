package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Point XDG_CONFIG_HOME at an empty dir so no real config is picked up.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultExclusions, cfg.Exclude)
	assert.False(t, cfg.Recursive)
	assert.False(t, cfg.Verify)
	assert.False(t, cfg.NoRename)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, DefaultRetentionDays, cfg.History.RetentionDays)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "cbzpack")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	content := `
output_dir: /archives
exclude:
  - "*.nfo"
verify: true
history:
  enabled: false
  retention_days: 7
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/archives", cfg.OutputDir)
	assert.Equal(t, []string{"*.nfo"}, cfg.Exclude)
	assert.True(t, cfg.Verify)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 7, cfg.History.RetentionDays)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "cbzpack")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not valid yaml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	require.NoError(t, WriteDefault())

	configPath := filepath.Join(configHome, "cbzpack", "config.yaml")
	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ComicInfo.xml")

	// Second call must not clobber an existing file.
	require.NoError(t, os.WriteFile(configPath, []byte("output_dir: /keep\n"), 0o644))
	require.NoError(t, WriteDefault())

	data, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "output_dir: /keep\n", string(data))
}

func TestConfigDir_XDGOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/config", "cbzpack"), dir)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/comics")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "comics"), expanded)

	unchanged, err := ExpandPath("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", unchanged)
}
