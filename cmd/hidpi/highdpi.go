package main

import (
	"fmt"

	"gfxprof/internal/domain"
	"gfxprof/internal/hidpi"
	"gfxprof/internal/sysexec"

	"github.com/spf13/cobra"
)

var highdpiCmd = &cobra.Command{
	Use:   "highdpi",
	Short: "Enable high-DPI settings",
	Long: `Enable high-DPI display scaling.

Sets 2x window scaling, the xhdpi window-manager theme, a larger cursor,
adds QT_SCALE_FACTOR=2 to ~/.xsessionrc and bumps the Alacritty font size.

Settings-store failures are printed and skipped; the command still exits 0.

Examples:
  hidpi highdpi`,
	Args: cobra.NoArgs,
	RunE: runHighDPI,
}

func init() {
	rootCmd.AddCommand(highdpiCmd)
}

func runHighDPI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sw := hidpi.New(cfg, sysexec.New(), cmd.OutOrStdout())
	return sw.Apply(cmd.Context(), domain.ProfileHighDPI)
}
