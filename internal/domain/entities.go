package domain

import "time"

type SourceFile struct {
	Path    string
	ModTime time.Time
	Size    int64
}

type FileStatus string

const (
	StatusCleaned   FileStatus = "cleaned"
	StatusUnchanged FileStatus = "unchanged"
	StatusSkipped   FileStatus = "skipped"
	StatusFailed    FileStatus = "failed"
)

// FileResult is the outcome of processing one source file.
type FileResult struct {
	Path         string     `json:"path"`
	Status       FileStatus `json:"status"`
	BytesBefore  int        `json:"bytes_before"`
	BytesAfter   int        `json:"bytes_after"`
	LinesRemoved int        `json:"lines_removed"`
	Err          string     `json:"error,omitempty"`
}

// RunResult aggregates a whole clean run.
type RunResult struct {
	FilesCleaned   int
	FilesUnchanged int
	FilesSkipped   int
	FilesFailed    int
	BytesRemoved   int
	EntriesPruned  int
	MissingDirs    []string
	Files          []FileResult
	DryRun         bool
}

type LedgerEntry struct {
	Path      string    `json:"path"`
	Hash      string    `json:"hash"`
	CleanedAt time.Time `json:"cleaned_at"`
}

type RunRecord struct {
	ID             uint64        `json:"id"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration"`
	Root           string        `json:"root"`
	FilesCleaned   int           `json:"files_cleaned"`
	FilesUnchanged int           `json:"files_unchanged"`
	FilesSkipped   int           `json:"files_skipped"`
	FilesFailed    int           `json:"files_failed"`
	BytesRemoved   int           `json:"bytes_removed"`
	EntriesPruned  int           `json:"entries_pruned"`
	DryRun         bool          `json:"dry_run"`
}
