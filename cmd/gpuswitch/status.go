package main

import (
	"fmt"

	"gfxprof/internal/domain"
	"gfxprof/internal/gpu"
	"gfxprof/internal/sysexec"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active GPU profile",
	Long: `Show the active GPU profile and the state of the managed files.

Read-only and requires no privilege; inspects the same markers the
switch uses and invokes no external commands.

Examples:
  gpuswitch status`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sw := gpu.New(cfg, sysexec.New(), cmd.OutOrStdout())
	st := sw.Status()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n", render(styleTitle, "Current GPU mode:"), st.Profile)

	if st.Profile == domain.ProfileNVIDIA {
		fmt.Fprintln(out, "  NVIDIA GPU is active")
		fmt.Fprintf(out, "  Config: %s\n", cfg.XorgConf)
		fmt.Fprintf(out, "  LightDM setup: %s\n", cfg.LightDMScript)
		fmt.Fprintf(out, "  LightDM config: %s\n", cfg.LightDMConf)
		if st.SetupScript != "" && st.SetupScript != cfg.LightDMScript {
			fmt.Fprintf(out, "  Warning: LightDM config points at %s\n", st.SetupScript)
		}
	} else {
		fmt.Fprintln(out, "  Integrated graphics is active")
		fmt.Fprintln(out, "  NVIDIA config: not present")
		fmt.Fprintln(out, "  LightDM setup: not present")
		fmt.Fprintln(out, "  LightDM config: not present")
	}

	if st.PowerDown {
		fmt.Fprintf(out, "  GPU power down: %s\n", render(styleOn, "ENABLED"))
		fmt.Fprintf(out, "  udev rules: %s\n", cfg.UdevRules)
	} else {
		fmt.Fprintf(out, "  GPU power down: %s\n", render(styleOff, "disabled"))
	}

	return nil
}
