package main

import (
	"fmt"

	"gfxprof/internal/domain"
	"gfxprof/internal/gpu"
	"gfxprof/internal/sysexec"

	"github.com/spf13/cobra"
)

var nvidiaCmd = &cobra.Command{
	Use:   "nvidia",
	Short: "Switch to the NVIDIA GPU",
	Long: `Switch to the NVIDIA GPU.

Removes any power-down rules, detects the card's PCI BusID and generates
the Xorg OutputClass configuration and the LightDM seat setup for it.
Fails without touching the Xorg configuration when no NVIDIA VGA or 3D
controller is found on the bus.

Examples:
  sudo gpuswitch nvidia`,
	Args: cobra.NoArgs,
	RunE: runNvidia,
}

func init() {
	rootCmd.AddCommand(nvidiaCmd)
}

func runNvidia(cmd *cobra.Command, args []string) error {
	if err := gpu.CheckRoot(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sw := gpu.New(cfg, sysexec.New(), cmd.OutOrStdout())
	previous := sw.Resolve()

	if err := sw.Apply(cmd.Context(), domain.ProfileNVIDIA, gpu.Options{}); err != nil {
		return err
	}

	recordSwitch(cmd.OutOrStdout(), previous.String(), domain.ProfileNVIDIA.String(), false)
	return nil
}
