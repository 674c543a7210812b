package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"decomment/internal/adapter/stripper"
	"decomment/internal/domain"
	"decomment/internal/port"
)

// CleanHooks receives progress notifications. Nil fields are ignored.
type CleanHooks struct {
	OnMissingDir func(path string)
	OnFile       func(processed, total int, path string)
	OnFileDone   func(processed, total int, res domain.FileResult)
	OnSkip       func(path string)
	OnError      func(path string, err error)
	OnWarn       func(msg string)
}

// CleanOptions configures a CleanUseCase.
type CleanOptions struct {
	DryRun bool
}

// CleanUseCase strips comments from files found under target directories.
type CleanUseCase struct {
	walker   port.FileWalker
	stripper port.Stripper
	reader   port.FileReader
	writer   port.FileWriter
	ledger   port.Ledger
	opts     CleanOptions
	hooks    CleanHooks
}

// NewCleanUseCase creates a new clean use case. ledger may be nil.
func NewCleanUseCase(
	walker port.FileWalker,
	stripper port.Stripper,
	reader port.FileReader,
	writer port.FileWriter,
	ledger port.Ledger,
	opts CleanOptions,
	hooks CleanHooks,
) *CleanUseCase {
	return &CleanUseCase{
		walker:   walker,
		stripper: stripper,
		reader:   reader,
		writer:   writer,
		ledger:   ledger,
		opts:     opts,
		hooks:    hooks,
	}
}

// Clean processes every matching file under each target, resolved relative
// to root. Per-file failures are reported and do not stop the run.
func (u *CleanUseCase) Clean(ctx context.Context, root string, targets []string) (*domain.RunResult, error) {
	started := time.Now()
	result := &domain.RunResult{DryRun: u.opts.DryRun}

	var files []domain.SourceFile
	// walked holds directories fully listed or absent; only their ledger
	// entries may be pruned.
	var walked []string
	for _, target := range targets {
		dir := filepath.Join(root, target)
		abs, absErr := filepath.Abs(dir)

		if _, err := os.Stat(dir); err != nil {
			result.MissingDirs = append(result.MissingDirs, dir)
			if u.hooks.OnMissingDir != nil {
				u.hooks.OnMissingDir(dir)
			}
			if absErr == nil {
				walked = append(walked, abs)
			}
			continue
		}

		found, err := u.walker.Walk(dir)
		if err != nil {
			u.warn(fmt.Sprintf("walk %s: %v", dir, err))
		} else if absErr == nil {
			walked = append(walked, abs)
		}
		files = append(files, found...)
	}

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if u.hooks.OnFile != nil {
			u.hooks.OnFile(i+1, len(files), file.Path)
		}
		res := u.processFile(file.Path)
		u.record(result, res)
		if u.hooks.OnFileDone != nil {
			u.hooks.OnFileDone(i+1, len(files), res)
		}
	}

	if u.ledger != nil && !u.opts.DryRun {
		result.EntriesPruned = u.prune(walked, files)
	}

	if u.ledger != nil {
		record := domain.RunRecord{
			StartedAt:      started,
			Duration:       time.Since(started),
			Root:           root,
			FilesCleaned:   result.FilesCleaned,
			FilesUnchanged: result.FilesUnchanged,
			FilesSkipped:   result.FilesSkipped,
			FilesFailed:    result.FilesFailed,
			BytesRemoved:   result.BytesRemoved,
			EntriesPruned:  result.EntriesPruned,
			DryRun:         result.DryRun,
		}
		if _, err := u.ledger.AddRun(record); err != nil {
			u.warn(fmt.Sprintf("failed to record run: %v", err))
		}
	}

	return result, nil
}

// prune drops ledger entries under the walked directories whose files were
// not seen in this run.
func (u *CleanUseCase) prune(dirs []string, files []domain.SourceFile) int {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.Path] = true
	}

	var prefixes []string
	for _, dir := range dirs {
		prefixes = append(prefixes, dir+string(filepath.Separator))
	}

	entries, err := u.ledger.List()
	if err != nil {
		u.warn(fmt.Sprintf("ledger list: %v", err))
		return 0
	}

	pruned := 0
	for _, entry := range entries {
		if seen[entry.Path] || !hasAnyPrefix(entry.Path, prefixes) {
			continue
		}
		if err := u.ledger.Delete(entry.Path); err != nil {
			u.warn(fmt.Sprintf("ledger prune for %s: %v", entry.Path, err))
			continue
		}
		pruned++
	}
	return pruned
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Process cleans a single file and reports whether it succeeded.
func (u *CleanUseCase) Process(path string) bool {
	return u.processFile(path).Status != domain.StatusFailed
}

func (u *CleanUseCase) processFile(path string) domain.FileResult {
	res := domain.FileResult{Path: path}

	content, err := u.reader.ReadFile(path)
	if err != nil {
		return u.fail(res, err)
	}
	res.BytesBefore = len(content)

	hash := contentHash(content)
	if u.ledger != nil {
		entry, found, err := u.ledger.Get(path)
		if err != nil {
			u.warn(fmt.Sprintf("ledger lookup for %s: %v", path, err))
		} else if found && entry.Hash == hash {
			res.Status = domain.StatusSkipped
			res.BytesAfter = len(content)
			if u.hooks.OnSkip != nil {
				u.hooks.OnSkip(path)
			}
			return res
		}
	}

	cleaned := u.stripper.Strip(content)
	res.BytesAfter = len(cleaned)
	res.LinesRemoved = stripper.Diff(content, cleaned).LinesRemoved

	res.Status = domain.StatusCleaned
	if cleaned == content {
		res.Status = domain.StatusUnchanged
	}

	if u.opts.DryRun {
		return res
	}

	if err := u.writer.WriteFile(path, cleaned); err != nil {
		return u.fail(res, err)
	}

	if u.ledger != nil {
		entry := domain.LedgerEntry{
			Path:      path,
			Hash:      contentHash(cleaned),
			CleanedAt: time.Now(),
		}
		if err := u.ledger.Put(entry); err != nil {
			u.warn(fmt.Sprintf("ledger update for %s: %v", path, err))
		}
	}

	return res
}

func (u *CleanUseCase) fail(res domain.FileResult, err error) domain.FileResult {
	res.Status = domain.StatusFailed
	res.Err = err.Error()
	if u.hooks.OnError != nil {
		u.hooks.OnError(res.Path, err)
	}
	return res
}

func (u *CleanUseCase) warn(msg string) {
	if u.hooks.OnWarn != nil {
		u.hooks.OnWarn(msg)
	}
}

func (u *CleanUseCase) record(result *domain.RunResult, res domain.FileResult) {
	result.Files = append(result.Files, res)
	switch res.Status {
	case domain.StatusCleaned:
		result.FilesCleaned++
		result.BytesRemoved += res.BytesBefore - res.BytesAfter
	case domain.StatusUnchanged:
		result.FilesUnchanged++
	case domain.StatusSkipped:
		result.FilesSkipped++
	case domain.StatusFailed:
		result.FilesFailed++
	}
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
