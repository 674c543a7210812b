package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"decomment/config"
	"decomment/internal/adapter/fs"
	"decomment/internal/adapter/store"
	"decomment/internal/adapter/stripper"
	"decomment/internal/domain"
	"decomment/internal/port"
	"decomment/internal/usecase"
)

func runClean(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := GetRootDir()
	out := newConsole(cmd.OutOrStdout(), cfg.Logging.Level, cfg.Logging.Color)

	ledger, closeLedger, err := openLedger(cfg, root, out)
	if err != nil {
		return err
	}
	defer closeLedger()

	var bar *progressbar.ProgressBar
	hooks := usecase.CleanHooks{
		OnMissingDir: out.missingDir,
		OnSkip:       out.skipped,
		OnError:      out.processingError,
		OnWarn:       out.warning,
		OnFile: func(_, _ int, path string) {
			if !showProgress {
				out.cleaning(path)
			}
		},
		OnFileDone: func(processed, total int, _ domain.FileResult) {
			if !showProgress {
				return
			}
			if bar == nil {
				bar = newProgressBar(total)
			}
			bar.Set(processed)
		},
	}

	uc := usecase.NewCleanUseCase(
		fs.NewWalker(cfg.Clean.Extensions, cfg.Clean.Excludes),
		stripper.NewRegexStripper(),
		fs.FileIO{},
		fs.FileIO{},
		ledger,
		usecase.CleanOptions{DryRun: cfg.Clean.DryRun},
		hooks,
	)

	result, err := uc.Clean(cmd.Context(), root, cfg.Clean.Targets)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\nInterrupted: %v\n", err)
	}

	// Per-file failures are reported above and never change the exit status.
	out.summary(result)
	return nil
}

// openLedger opens the bbolt ledger when enabled. The returned port is nil
// otherwise, so the use case sees a true nil interface.
func openLedger(cfg *config.Config, root string, out *console) (port.Ledger, func(), error) {
	noop := func() {}
	if !cfg.Ledger.Enabled {
		return nil, noop, nil
	}

	if cfg.Ledger.Path == "" {
		if err := config.EnsureStateDir(root); err != nil {
			return nil, noop, fmt.Errorf("failed to create %s directory: %w", config.StateDir, err)
		}
	}

	st, err := store.NewBoltLedger(cfg.LedgerDBPath(root))
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open ledger: %w", err)
	}

	migration, err := st.Prepare()
	if err != nil {
		st.Close()
		return nil, noop, err
	}
	if migration.NeedsRebuild {
		out.warning(fmt.Sprintf("ledger reset: %s", migration.Reason))
	}

	return st, func() { st.Close() }, nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Cleaning[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
