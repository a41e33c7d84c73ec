package xutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("no_such_file.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "./logs", cfg.Log.Dir)
	assert.Equal(t, 1000, cfg.Window.DefaultLengthMsec)
}

func TestLoadConfigFile(t *testing.T) {
	content := `
[log]
dir = "/tmp/xfec-logs"
level = 4
console = false

[metric]
enable = false
listen = "0.0.0.0:14000"
alias = "bench"

[window]
default_length_msec = 250
`
	path := filepath.Join(t.TempDir(), "xfec.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xfec-logs", cfg.Log.Dir)
	assert.Equal(t, 4, cfg.Log.Level)
	assert.False(t, cfg.Log.Console)
	assert.False(t, cfg.Metric.Enable)
	assert.Equal(t, "0.0.0.0:14000", cfg.Metric.Listen)
	assert.Equal(t, "bench", cfg.Metric.Alias)
	assert.Equal(t, 250, cfg.Window.DefaultLengthMsec)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("log = {{"), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
