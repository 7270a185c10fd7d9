package main

import (
	"fmt"

	"gfxprof/internal/domain"
	"gfxprof/internal/gpu"
	"gfxprof/internal/sysexec"

	"github.com/spf13/cobra"
)

var togglePowerDown bool

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between the GPUs",
	Long: `Toggle to whichever GPU is not currently active.

The active profile is inferred from the presence of the generated Xorg
configuration. --powerdown applies when the toggle lands on intel.

Examples:
  sudo gpuswitch toggle
  sudo gpuswitch toggle --powerdown`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	toggleCmd.Flags().BoolVarP(&togglePowerDown, "powerdown", "p", false, "power the NVIDIA card down on next boot (intel only)")
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	if err := gpu.CheckRoot(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sw := gpu.New(cfg, sysexec.New(), cmd.OutOrStdout())
	previous := sw.Resolve()

	target := domain.ProfileNVIDIA
	powerDown := false
	if previous == domain.ProfileNVIDIA {
		target = domain.ProfileIntel
		powerDown = togglePowerDown
	}

	if err := sw.Apply(cmd.Context(), target, gpu.Options{PowerDown: powerDown}); err != nil {
		return err
	}

	recordSwitch(cmd.OutOrStdout(), previous.String(), target.String(), powerDown)
	return nil
}
