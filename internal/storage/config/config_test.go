package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/etc/X11/xorg.conf.d/10-nvidia-drm-outputclass.conf", cfg.XorgConf)
	assert.Equal(t, "/tmp/gpu-mode.state", cfg.StateFile)
	assert.Equal(t, "24.0", cfg.HighDPIFontSize)
	assert.Equal(t, "14.0", cfg.NormalFontSize)
	assert.True(t, filepath.IsAbs(cfg.XSessionRC))
	assert.Equal(t, ".xsessionrc", filepath.Base(cfg.XSessionRC))
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	content := "xorg_conf: /etc/X11/xorg.conf.d/99-nvidia.conf\nhighdpi_font_size: \"26.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/etc/X11/xorg.conf.d/99-nvidia.conf", cfg.XorgConf)
	assert.Equal(t, "26.0", cfg.HighDPIFontSize)
	// Untouched fields keep their defaults
	assert.Equal(t, "/etc/udev/rules.d/00-remove-nvidia.rules", cfg.UdevRules)
	assert.Equal(t, "14.0", cfg.NormalFontSize)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	cfg, err := Default()
	require.NoError(t, err)
	cfg.StateFile = "/run/gpu-mode.state"

	require.NoError(t, cfg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/run/gpu-mode.state", loaded.StateFile)
	assert.Equal(t, cfg.XorgConf, loaded.XorgConf)
}
