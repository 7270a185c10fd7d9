package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gfxprof/internal/storage/config"
	"gfxprof/internal/storage/history"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	configDir string
	dataDir   string
	noColor   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gpuswitch",
	Short: "Switch between the NVIDIA GPU and integrated graphics",
	Long: `gpuswitch switches the active GPU by rewriting the Xorg OutputClass
configuration, the LightDM seat setup, and optionally a udev rule set that
powers the NVIDIA card down entirely.

All commands except 'status' and 'history' must be run as root.
The switch never restarts the display manager itself; it prints the
restart instructions instead.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation: show status and usage, succeed.
		if err := runStatus(cmd, args); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return cmd.Usage()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/gfxprof)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for the switch history (default: ~/.local/share/gfxprof)")
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

// historyPath returns the switch-history database path, applying the --data
// override.
func historyPath() (string, error) {
	dir := dataDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".local", "share", "gfxprof")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}
	return filepath.Join(dir, "gfxprof.db"), nil
}

// recordSwitch appends a transition to the history log. Best-effort: the
// switch already happened, so a logging failure is a warning, not an error.
func recordSwitch(out io.Writer, previous, current string, powerDown bool) {
	path, err := historyPath()
	if err != nil {
		fmt.Fprintf(out, "Warning: could not record switch: %v\n", err)
		return
	}

	db, err := history.New(path)
	if err != nil {
		fmt.Fprintf(out, "Warning: could not record switch: %v\n", err)
		return
	}
	defer db.Close()

	if err := db.Record("gpuswitch", previous, current, powerDown); err != nil {
		fmt.Fprintf(out, "Warning: could not record switch: %v\n", err)
	}
}
