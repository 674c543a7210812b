package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"decomment/internal/domain"
)

var (
	bucketFiles = []byte("files")
	bucketRuns  = []byte("runs")
	bucketMeta  = []byte("meta")
)

// BoltLedger persists cleaned-file hashes and run history in a bbolt file.
type BoltLedger struct {
	db *bbolt.DB
}

func NewBoltLedger(path string) (*BoltLedger, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFiles, bucketRuns, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltLedger{db: db}, nil
}

func (s *BoltLedger) Get(path string) (domain.LedgerEntry, bool, error) {
	var entry domain.LedgerEntry
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(path))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &entry)
	})
	return entry, found, err
}

func (s *BoltLedger) Put(entry domain.LedgerEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketFiles).Put([]byte(entry.Path), data)
	})
}

func (s *BoltLedger) List() ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).ForEach(func(k, v []byte) error {
			var entry domain.LedgerEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	})
	return entries, err
}

func (s *BoltLedger) Delete(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).Delete([]byte(path))
	})
}

// CountFiles returns the number of tracked files.
func (s *BoltLedger) CountFiles() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketFiles).Stats().KeyN
		return nil
	})
	return n, err
}

func (s *BoltLedger) AddRun(record domain.RunRecord) (uint64, error) {
	var id uint64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		record.ID = seq
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return b.Put(runKey(seq), data)
	})
	return id, err
}

func (s *BoltLedger) ListRuns(limit int) ([]domain.RunRecord, error) {
	var runs []domain.RunRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketRuns).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			var record domain.RunRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}
			runs = append(runs, record)
		}
		return nil
	})
	return runs, err
}

func (s *BoltLedger) Close() error {
	return s.db.Close()
}

func runKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
