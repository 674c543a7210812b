package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"decomment/internal/adapter/fs"
	"decomment/internal/adapter/stripper"
	"decomment/internal/usecase"
)

var stripCmd = &cobra.Command{
	Use:   "strip <file>...",
	Short: "Strip comments from specific files",
	Long: `Strip comments from the given files regardless of their extension.
The ledger is not consulted.

Examples:
  decomment strip src/app.js src/theme.css
  decomment strip --dry-run legacy/util.js`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := newConsole(cmd.OutOrStdout(), cfg.Logging.Level, cfg.Logging.Color)

	uc := usecase.NewCleanUseCase(
		fs.NewWalker(nil, nil),
		stripper.NewRegexStripper(),
		fs.FileIO{},
		fs.FileIO{},
		nil,
		usecase.CleanOptions{DryRun: cfg.Clean.DryRun},
		usecase.CleanHooks{OnError: out.processingError, OnWarn: out.warning},
	)

	failed := 0
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		out.cleaning(path)
		if !uc.Process(path) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d files failed\n", failed, len(args))
	}
	return nil
}
