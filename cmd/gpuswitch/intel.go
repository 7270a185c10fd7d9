package main

import (
	"fmt"

	"gfxprof/internal/domain"
	"gfxprof/internal/gpu"
	"gfxprof/internal/sysexec"

	"github.com/spf13/cobra"
)

var intelPowerDown bool

var intelCmd = &cobra.Command{
	Use:   "intel",
	Short: "Switch to integrated graphics",
	Long: `Switch to integrated graphics.

Removes the Xorg OutputClass configuration and the LightDM seat setup.
With --powerdown, additionally installs udev rules that remove every
function of the NVIDIA card from the bus so it powers down on the next
boot; without the flag any such rules are removed.

Examples:
  sudo gpuswitch intel
  sudo gpuswitch intel --powerdown`,
	Args: cobra.NoArgs,
	RunE: runIntel,
}

func init() {
	intelCmd.Flags().BoolVarP(&intelPowerDown, "powerdown", "p", false, "power the NVIDIA card down on next boot")
	rootCmd.AddCommand(intelCmd)
}

func runIntel(cmd *cobra.Command, args []string) error {
	if err := gpu.CheckRoot(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sw := gpu.New(cfg, sysexec.New(), cmd.OutOrStdout())
	previous := sw.Resolve()

	if err := sw.Apply(cmd.Context(), domain.ProfileIntel, gpu.Options{PowerDown: intelPowerDown}); err != nil {
		return err
	}

	recordSwitch(cmd.OutOrStdout(), previous.String(), domain.ProfileIntel.String(), intelPowerDown)
	return nil
}
