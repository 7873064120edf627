package criteria

import (
	"strconv"
	"strings"

	"go-floodlens/logging"
	"go-floodlens/types"
)

// Predicate is a normalized, typed filter test for one field of a record.
type Predicate interface {
	Field() string
	Match(rec types.Record) bool
}

// ScalarMatch: case-insensitive, trimmed substring containment. An empty
// criterion text is vacuously true once the field is known to exist.
type ScalarMatch struct {
	field string
	text  string
}

func (p ScalarMatch) Field() string { return p.field }

func (p ScalarMatch) Match(rec types.Record) bool {
	v, ok := rec.Field(p.field)
	if !ok {
		return false
	}
	if p.text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(v)), p.text)
}

// SetMatch: the record matches if its field text contains any alternative.
type SetMatch struct {
	field string
	alts  []string
}

func (p SetMatch) Field() string { return p.field }

func (p SetMatch) Match(rec types.Record) bool {
	v, ok := rec.Field(p.field)
	if !ok {
		return false
	}
	lv := strings.ToLower(strings.TrimSpace(v))
	for _, alt := range p.alts {
		if strings.Contains(lv, alt) {
			return true
		}
	}
	return false
}

// MonthMatch: numeric month equality after running both sides through the
// month lookup. An unresolvable criterion month produces a predicate that
// can never match.
type MonthMatch struct {
	field string
	month int
	valid bool
}

func (p MonthMatch) Field() string { return p.field }

func (p MonthMatch) Match(rec types.Record) bool {
	if !p.valid {
		return false
	}
	v, ok := rec.Field(p.field)
	if !ok {
		return false
	}
	n, ok := types.MonthNumber(v)
	if !ok {
		return false
	}
	return n == p.month
}

// RangeMatch: strict numeric comparison against a threshold.
type RangeMatch struct {
	field     string
	op        string // "above" or "below"
	threshold float64
}

func (p RangeMatch) Field() string { return p.field }

func (p RangeMatch) Match(rec types.Record) bool {
	v, ok := rec.Field(p.field)
	if !ok {
		return false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return false
	}
	switch p.op {
	case "above":
		return n > p.threshold
	case "below":
		return n < p.threshold
	}
	return false
}

// Normalize converts parsed criteria into typed predicates. Keys outside the
// field vocabulary are not rejected; they become predicates that fail on
// every record, since no record carries the field. Rainfall becomes a
// RangeMatch only when both the numeric threshold and an above/below
// directive were present; otherwise it degrades to a substring ScalarMatch.
func Normalize(crit types.Criteria) []Predicate {
	log := logging.GetLogger()

	var preds []Predicate
	for _, entry := range crit.Entries {
		if !types.IsSchemaField(entry.Field) {
			log.WithField("field", entry.Field).Warn("criteria key outside field vocabulary, will match no records")
		}

		if entry.IsSet {
			alts := make([]string, 0, len(entry.Values))
			for _, v := range entry.Values {
				alts = append(alts, strings.ToLower(strings.TrimSpace(v)))
			}
			preds = append(preds, SetMatch{field: entry.Field, alts: alts})
			continue
		}

		value := ""
		if len(entry.Values) > 0 {
			value = entry.Values[0]
		}

		if strings.EqualFold(entry.Field, types.FieldMonth) {
			n, ok := types.MonthNumber(value)
			preds = append(preds, MonthMatch{field: entry.Field, month: n, valid: ok})
			continue
		}

		if entry.Field == types.FieldMonthlyRainfall && rangeDirective(crit, value) {
			threshold, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)
			preds = append(preds, RangeMatch{field: entry.Field, op: crit.RainfallOp, threshold: threshold})
			continue
		}

		preds = append(preds, ScalarMatch{field: entry.Field, text: strings.ToLower(strings.TrimSpace(value))})
	}
	return preds
}

// rangeDirective reports whether the criteria carry a usable rainfall range:
// an above/below directive together with a numeric threshold.
func rangeDirective(crit types.Criteria, value string) bool {
	if crit.RainfallOp != "above" && crit.RainfallOp != "below" {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil
}
