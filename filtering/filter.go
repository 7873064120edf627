// Package filtering evaluates normalized predicates against the record
// store. It never mutates the records or the predicates it is given.
package filtering

import (
	"go-floodlens/criteria"
	"go-floodlens/types"
)

// Apply returns the records matching every predicate, preserving the input
// order. Zero predicates filter to the empty set: absence of criteria is
// absence of intent, never "show everything".
func Apply(preds []criteria.Predicate, records []types.Record) []types.Record {
	if len(preds) == 0 {
		return nil
	}

	var matched []types.Record
	for _, rec := range records {
		if matchesAll(preds, rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func matchesAll(preds []criteria.Predicate, rec types.Record) bool {
	for _, p := range preds {
		if !p.Match(rec) {
			return false
		}
	}
	return true
}
