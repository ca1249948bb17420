package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/credlens/credlens/internal/model"
)

// Store holds the fixed collection of curated reference statements. Records
// are immutable; a new Store is built for a full corpus replacement.
type Store struct {
	records []model.CorpusRecord
}

// Load reads corpus records from a JSON file, or returns the built-in seed
// corpus when path is empty.
func Load(path string) (*Store, error) {
	if path == "" {
		return NewStore(seedRecords), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var records []model.CorpusRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("corpus file %s contains no records", path)
	}

	for i, r := range records {
		if r.Statement == "" {
			return nil, fmt.Errorf("corpus record %d has an empty statement", i)
		}
	}

	return NewStore(records), nil
}

// NewStore wraps a record slice. The caller must not mutate records afterward.
func NewStore(records []model.CorpusRecord) *Store {
	return &Store{records: records}
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// At returns the record at position i. Positions are stable for the lifetime
// of the Store and are what the vector index reports as hit IDs.
func (s *Store) At(i int) model.CorpusRecord {
	return s.records[i]
}

// Records returns all records in position order
func (s *Store) Records() []model.CorpusRecord {
	return s.records
}
