package types

import "strings"

// CriterionEntry is one key of the criteria object produced by the language
// model: a field name plus either a single value or a set of alternatives.
type CriterionEntry struct {
	Field  string
	Values []string
	IsSet  bool
}

// Criteria is the parsed filter request. Entries keep the key order of
// the original JSON object so summaries render deterministically. The
// RainfallCondition helper key is lifted out of the entry list into
// RainfallOp. KeyCount counts every key of the raw object, helper included;
// a criteria object with zero keys means "no filter determined", which is
// distinct from "match everything".
type Criteria struct {
	Entries    []CriterionEntry
	RainfallOp string
	KeyCount   int
}

// Empty reports whether the raw criteria object had no keys at all.
func (c Criteria) Empty() bool {
	return c.KeyCount == 0
}

// Get returns the display value for a field, in entry order. Set-valued
// entries join their alternatives with "/", matching the summary rendering.
func (c Criteria) Get(field string) (string, bool) {
	for _, e := range c.Entries {
		if e.Field == field && len(e.Values) > 0 {
			return strings.Join(e.Values, "/"), true
		}
	}
	return "", false
}
