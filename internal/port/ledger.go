package port

import "decomment/internal/domain"

// Ledger remembers which files were already cleaned and records run history.
type Ledger interface {
	// Get returns the entry for path and whether one exists.
	Get(path string) (domain.LedgerEntry, bool, error)

	Put(entry domain.LedgerEntry) error

	// List returns every tracked entry.
	List() ([]domain.LedgerEntry, error)

	Delete(path string) error

	// AddRun appends a run record and assigns its ID.
	AddRun(record domain.RunRecord) (uint64, error)

	// ListRuns returns up to limit records, newest first.
	ListRuns(limit int) ([]domain.RunRecord, error)
}
