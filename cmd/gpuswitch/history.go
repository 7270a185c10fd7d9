package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"gfxprof/internal/storage/history"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent GPU switches",
	Long: `List recent GPU profile switches, newest first.

The log is informational only; the active profile is always derived from
the managed files, not from this log. Requires no privilege.

Examples:
  gpuswitch history
  gpuswitch history --limit 50`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := historyPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No switches recorded yet.")
		return nil
	}

	db, err := history.New(path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer db.Close()

	switches, err := db.Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(switches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No switches recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tFROM\tTO\tPOWERDOWN")
	for _, s := range switches {
		powerdown := ""
		if s.PowerDown {
			powerdown = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.SwitchedAt.Local().Format("2006-01-02 15:04:05"),
			s.Previous,
			s.Current,
			powerdown,
		)
	}
	return w.Flush()
}
