package main

import (
	"fmt"

	"gfxprof/internal/domain"
	"gfxprof/internal/hidpi"
	"gfxprof/internal/sysexec"

	"github.com/spf13/cobra"
)

var normalCmd = &cobra.Command{
	Use:   "normal",
	Short: "Revert to normal settings",
	Long: `Revert the display scaling to normal.

Resets the scaling keys, removes the QT_SCALE_FACTOR line from
~/.xsessionrc and restores the Alacritty font size.

Examples:
  hidpi normal`,
	Args: cobra.NoArgs,
	RunE: runNormal,
}

func init() {
	rootCmd.AddCommand(normalCmd)
}

func runNormal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sw := hidpi.New(cfg, sysexec.New(), cmd.OutOrStdout())
	return sw.Apply(cmd.Context(), domain.ProfileNormal)
}
