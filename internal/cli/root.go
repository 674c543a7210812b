package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"decomment/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string

	dryRun       bool
	showProgress bool
	useLedger    bool
)

var rootCmd = &cobra.Command{
	Use:   "decomment",
	Short: "Strip // and /* */ comments from JS, JSX and CSS sources in place",
	Long: `decomment walks the configured target directories and rewrites every
matching file with its comments removed. Runs of blank lines left behind are
collapsed to one.

Removal is textual: comment markers inside string literals are stripped too,
and a // directly after ':' is kept as part of a URL.

Example usage:
  decomment                      # Clean frontend/src, backend/src, payment-server
  decomment --dry-run            # Report what would change
  decomment strip src/app.js     # Clean specific files
  decomment history              # Show recent runs recorded in the ledger`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("dry-run") {
			cfg.Clean.DryRun = dryRun
		}
		if cmd.Flags().Changed("ledger") {
			cfg.Ledger.Enabled = useLedger
		}

		return nil
	},
	RunE: runClean,
}

// Execute runs the root command, cancelling work on interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./decomment.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
	rootCmd.PersistentFlags().BoolVar(&useLedger, "ledger", false, "skip files unchanged since their last clean and record the run")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "show a progress bar instead of per-file lines")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
