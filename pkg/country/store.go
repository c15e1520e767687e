package country

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Store is the ordered, read-only sequence of records for a session.
// Load order is preserved and duplicate names are kept as separate rows.
type Store struct {
	records []Country
	dropped int
}

// NewStore validates records and keeps the valid ones in order.
// Invalid rows are skipped and counted.
func NewStore(records []Country) *Store {
	s := &Store{records: make([]Country, 0, len(records))}
	for i, c := range records {
		if err := Validate(c); err != nil {
			log.Warnf("Skipping row %d: %v", i+1, err)
			s.dropped++
			continue
		}
		s.records = append(s.records, c)
	}
	log.Debugf("Store built: kept=[%d], dropped=[%d]", len(s.records), s.dropped)
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Dropped returns how many rows failed validation when the store was built.
func (s *Store) Dropped() int {
	return s.dropped
}

// All returns a copy of the records in load order.
func (s *Store) All() []Country {
	return slices.Clone(s.records)
}

// At returns the record at index i.
func (s *Store) At(i int) Country {
	return s.records[i]
}
