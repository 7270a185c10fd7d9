package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gfxprof/internal/storage/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	configDir string
	noColor   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hidpi",
	Short: "Toggle high-DPI display scaling",
	Long: `hidpi toggles the desktop between high-DPI and normal display scaling.

It sets the XFCE scaling keys, manages the QT_SCALE_FACTOR line in
~/.xsessionrc, and adjusts the Alacritty font size.

Modes:
  highdpi  - Enable high-DPI settings
  normal   - Revert to normal settings
  status   - Show the active profile (read-only)`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A valid mode is mandatory; print usage and fail.
		cmd.Usage()
		if len(args) > 0 {
			return fmt.Errorf("invalid mode %q", args[0])
		}
		return fmt.Errorf("missing mode")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/gfxprof)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// colorEnabled returns true if colored output should be used (respects --no-color and NO_COLOR env).
// NO_COLOR: if set (any value), color is disabled per https://no-color.org
func colorEnabled() bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleOn    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleOff   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// render applies a style when color is enabled, otherwise returns s as-is.
func render(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the tool configuration, applying the --config override.
func loadConfig() (*config.Config, error) {
	dir := configDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".config", "gfxprof")
	}
	return config.Load(dir)
}
