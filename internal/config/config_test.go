package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/houseprice"
compression = "zstd"

[chart]
width = 80
height = 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/houseprice", cfg.DataDir)
	assert.Equal(t, "zstd", cfg.Compression)
	assert.Equal(t, 80, cfg.Chart.Width)
	assert.Equal(t, 30, cfg.Chart.Height)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`compression = "lz4"`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lz4", cfg.Compression)
	assert.Equal(t, Default().Chart, cfg.Chart)
}

func TestLoadMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid = [toml"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadClampsInvalidChartDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[chart]
width = -5
height = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Chart, cfg.Chart)
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join(".houseprice", "config.toml"))
}
