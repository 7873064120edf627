// Package dataset loads the flood/landslide observation CSV once at startup
// and holds it as an immutable in-memory store.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go-floodlens/logging"
	"go-floodlens/types"
)

// requiredFields must be present in the CSV header; a missing one is a fatal
// load error. Other declared fields are a non-fatal warning and are treated
// as missing on every record.
var requiredFields = []string{
	types.FieldDistrict,
	types.FieldLatitude,
	types.FieldLongitude,
	types.FieldYear,
	types.FieldMonth,
}

// Store is the immutable record collection. Records are never mutated or
// removed during a session.
type Store struct {
	records []types.Record
}

// NewStore seals a slice of records into a store.
func NewStore(records []types.Record) *Store {
	return &Store{records: records}
}

// Load reads and seals the dataset in one step.
func Load(path string) (*Store, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	return NewStore(records), nil
}

// ReadRecords parses the header-labeled CSV at path. It is exported
// separately from Load so callers can enrich rows (geocode backfill) before
// sealing them into a store.
func ReadRecords(path string) ([]types.Record, error) {
	log := logging.GetLogger()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	header := rows[0]
	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := headerIndex[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is critically incomplete, missing headers: %s", strings.Join(missing, ", "))
	}

	for _, field := range types.SchemaFields {
		if _, ok := headerIndex[field]; !ok {
			log.WithField("header", field).Warn("dataset missing expected header, field treated as absent")
		}
	}

	var records []types.Record
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		values := make(map[string]string, len(types.SchemaFields))
		for _, field := range types.SchemaFields {
			idx, ok := headerIndex[field]
			if !ok || idx >= len(row) {
				continue
			}
			values[field] = row[idx]
		}
		records = append(records, types.NewRecord(values))
	}

	log.WithField("records", len(records)).Info("dataset loaded")
	return records, nil
}

// Records returns the observations in source order. The slice is copied so
// callers cannot reorder the store.
func (s *Store) Records() []types.Record {
	out := make([]types.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
