package main

import (
	"fmt"

	"gfxprof/internal/domain"
	"gfxprof/internal/hidpi"
	"gfxprof/internal/sysexec"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active scaling profile",
	Long: `Show the active scaling profile and the state of the managed files.

Read-only; inspects the same markers the switch uses and invokes no
external commands.

Examples:
  hidpi status`,
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

	sw := hidpi.New(cfg, sysexec.New(), cmd.OutOrStdout())
	st := sw.Status()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n", render(styleTitle, "Current scaling profile:"), st.Profile)

	if st.Profile == domain.ProfileHighDPI {
		fmt.Fprintf(out, "  QT_SCALE_FACTOR: %s in %s\n", render(styleOn, "set"), cfg.XSessionRC)
	} else {
		fmt.Fprintf(out, "  QT_SCALE_FACTOR: %s in %s\n", render(styleOff, "not set"), cfg.XSessionRC)
	}

	if !st.AlacrittyExists {
		fmt.Fprintf(out, "  Alacritty config: not found at %s\n", cfg.AlacrittyConfig)
	} else if st.FontSize != "" {
		fmt.Fprintf(out, "  Alacritty font: %s\n", st.FontSize)
	} else {
		fmt.Fprintf(out, "  Alacritty font: no size field in %s\n", cfg.AlacrittyConfig)
	}

	return nil
}
