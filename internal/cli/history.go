package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"decomment/internal/adapter/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent clean runs recorded in the ledger",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	dbPath := cfg.LedgerDBPath(GetRootDir())

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no ledger found at %s. Run 'decomment --ledger' first", dbPath)
	}

	st, err := store.NewBoltLedger(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read runs: %w", err)
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	for _, r := range runs {
		mode := ""
		if r.DryRun {
			mode = " (dry run)"
		}
		fmt.Fprintf(w, "#%d  %s  %s%s\n", r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Root, mode)
		fmt.Fprintf(w, "    cleaned=%d unchanged=%d skipped=%d failed=%d bytes_removed=%d pruned=%d took=%s\n",
			r.FilesCleaned, r.FilesUnchanged, r.FilesSkipped, r.FilesFailed, r.BytesRemoved, r.EntriesPruned, r.Duration.Round(time.Millisecond))
	}

	tracked, err := st.CountFiles()
	if err == nil {
		fmt.Fprintf(w, "\nFiles tracked: %d\n", tracked)
	}
	return nil
}
