// Package config provides the tools' own configuration file: overrides for
// the system paths the switchers manage.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the managed paths and values for both switchers. Every field
// has a default matching a stock XFCE/LightDM install; the config file only
// needs entries that differ.
type Config struct {
	// High-DPI switcher
	XSessionRC      string `yaml:"xsessionrc"`
	AlacrittyConfig string `yaml:"alacritty_config"`
	HighDPIFontSize string `yaml:"highdpi_font_size"`
	NormalFontSize  string `yaml:"normal_font_size"`

	// GPU switcher
	XorgConf      string `yaml:"xorg_conf"`
	LightDMScript string `yaml:"lightdm_script"`
	LightDMConf   string `yaml:"lightdm_conf"`
	UdevRules     string `yaml:"udev_rules"`
	StateFile     string `yaml:"state_file"`
}

// Default returns the configuration for a stock install.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("home directory: %w", err)
	}

	return &Config{
		XSessionRC:      filepath.Join(home, ".xsessionrc"),
		AlacrittyConfig: filepath.Join(home, ".config", "alacritty", "alacritty.toml"),
		HighDPIFontSize: "24.0",
		NormalFontSize:  "14.0",
		XorgConf:        "/etc/X11/xorg.conf.d/10-nvidia-drm-outputclass.conf",
		LightDMScript:   "/etc/lightdm/nvidia.sh",
		LightDMConf:     "/etc/lightdm/lightdm.conf.d/20-nvidia.conf",
		UdevRules:       "/etc/udev/rules.d/00-remove-nvidia.rules",
		StateFile:       "/tmp/gpu-mode.state",
	}, nil
}

// Load reads configuration from the given directory, returning defaults when
// no config file exists.
func Load(configDir string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(configDir, "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // Return defaults
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the given directory.
func (c *Config) Save(configDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
