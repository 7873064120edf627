// Package summarization derives a grounded natural-language answer from the
// filtered record subset. Category selection is an ordered table of
// (query-text test, renderer) pairs evaluated in fixed priority order; the
// first matching category wins and no categories stack.
package summarization

import (
	"fmt"
	"strconv"
	"strings"

	"go-floodlens/types"
)

type category struct {
	name   string
	match  func(q string) bool
	render func(recs []types.Record, crit types.Criteria) string
}

var categories = []category{
	{
		name:   "population",
		match:  anyKeyword("population", "affected"),
		render: renderPopulation,
	},
	{
		name:   "rainfall",
		match:  anyKeyword("rain"),
		render: renderRainfall,
	},
	{
		name:   "flood",
		match:  anyKeyword("flood", "severe"),
		render: renderFlood,
	},
	{
		name:   "landslide",
		match:  anyKeyword("landslide"),
		render: renderLandslide,
	},
}

// Synthesize produces the contextual answer for a query over the filtered
// subset. It is a pure function of its inputs.
func Synthesize(query string, recs []types.Record, crit types.Criteria) string {
	q := strings.ToLower(query)
	for _, c := range categories {
		if c.match(q) {
			return c.render(recs, crit)
		}
	}
	return renderGeneric(recs, crit)
}

func anyKeyword(words ...string) func(string) bool {
	return func(q string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
}

func renderPopulation(recs []types.Record, crit types.Criteria) string {
	total := 0
	maxAffected := 0
	worstDistrict := ""
	districts := map[string]bool{}

	for _, rec := range recs {
		affected := intField(rec, types.FieldAffectedPopulation)
		total += affected
		if d, ok := rec.Field(types.FieldDistrict); ok {
			districts[d] = true
			if affected > maxAffected {
				maxAffected = affected
				worstDistrict = d
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the data, approximately %s people were affected", formatInt(total))
	appendYear(&b, crit, "in")
	appendMonth(&b, crit, "during")

	if district, ok := crit.Get(types.FieldDistrict); ok {
		fmt.Fprintf(&b, " in %s district", district)
	} else if len(districts) > 0 {
		fmt.Fprintf(&b, " across %d districts in Assam", len(districts))
		if worstDistrict != "" {
			fmt.Fprintf(&b, ", with %s being the worst affected (%s people)", worstDistrict, formatInt(maxAffected))
		}
	}

	b.WriteString(".")
	return b.String()
}

func renderRainfall(recs []types.Record, crit types.Criteria) string {
	var total, maxRainfall float64
	maxLocation := ""
	valid := 0

	for _, rec := range recs {
		rainfall := floatField(rec, types.FieldMonthlyRainfall)
		if rainfall <= 0 {
			continue
		}
		total += rainfall
		valid++
		if rainfall > maxRainfall {
			maxRainfall = rainfall
			maxLocation = locationLabel(rec)
		}
	}

	if valid == 0 {
		return fmt.Sprintf("I found %d locations matching your query, but rainfall data is unavailable.", len(recs))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The average rainfall was %.1f mm", total/float64(valid))
	appendYear(&b, crit, "in")
	appendMonth(&b, crit, "during")
	appendDistrict(&b, crit, "in")
	fmt.Fprintf(&b, ". The highest recorded rainfall was %.1f mm in %s.", maxRainfall, maxLocation)
	return b.String()
}

func renderFlood(recs []types.Record, crit types.Criteria) string {
	counts := map[string]int{}
	for _, rec := range recs {
		severity, ok := rec.Field(types.FieldFloodSeverity)
		if !ok {
			continue
		}
		switch severity {
		case "Severe", "High", "Medium", "Low", "None":
			counts[severity]++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d flood records", len(recs))
	appendYear(&b, crit, "from")
	appendMonth(&b, crit, "in")
	appendDistrict(&b, crit, "for")

	severe := counts["Severe"] + counts["High"]
	if severe > 0 {
		fmt.Fprintf(&b, ". Of these, %d were classified as severe or high severity floods.", severe)
	} else {
		b.WriteString(".")
	}
	return b.String()
}

func renderLandslide(recs []types.Record, crit types.Criteria) string {
	total := 0
	highRisk := 0
	for _, rec := range recs {
		total += intField(rec, types.FieldLandslideCount)
		if risk, ok := rec.Field(types.FieldLandslideRisk); ok && risk == "High" {
			highRisk++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found data on %d reported landslides", total)
	appendYear(&b, crit, "in")
	appendMonth(&b, crit, "during")
	appendDistrict(&b, crit, "in")

	if highRisk > 0 {
		fmt.Fprintf(&b, ". There are %d locations classified as high landslide risk areas.", highRisk)
	} else {
		b.WriteString(".")
	}
	return b.String()
}

func renderGeneric(recs []types.Record, crit types.Criteria) string {
	seen := map[string]bool{}
	var districts []string
	for _, rec := range recs {
		if d, ok := rec.Field(types.FieldDistrict); ok && !seen[d] {
			seen[d] = true
			districts = append(districts, d)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d records matching your criteria", len(recs))
	appendYear(&b, crit, "from")
	appendMonth(&b, crit, "in")

	if len(districts) > 0 && len(districts) < 5 {
		fmt.Fprintf(&b, " across %s", strings.Join(districts, ", "))
	} else if len(districts) >= 5 {
		fmt.Fprintf(&b, " across %d districts in Assam", len(districts))
	}

	b.WriteString(".")
	return b.String()
}

func appendYear(b *strings.Builder, crit types.Criteria, preposition string) {
	if year, ok := crit.Get(types.FieldYear); ok {
		fmt.Fprintf(b, " %s %s", preposition, year)
	}
}

func appendMonth(b *strings.Builder, crit types.Criteria, preposition string) {
	month, ok := crit.Get(types.FieldMonth)
	if !ok {
		return
	}
	n, ok := types.MonthNumber(month)
	if !ok {
		return
	}
	if name, ok := types.MonthName(n); ok {
		fmt.Fprintf(b, " %s %s", preposition, name)
	}
}

func appendDistrict(b *strings.Builder, crit types.Criteria, preposition string) {
	if district, ok := crit.Get(types.FieldDistrict); ok {
		fmt.Fprintf(b, " %s %s", preposition, district)
	}
}

func locationLabel(rec types.Record) string {
	if name, ok := rec.Field(types.FieldLocationName); ok && name != "" {
		return name
	}
	district, _ := rec.Field(types.FieldDistrict)
	return district
}

func intField(rec types.Record, field string) int {
	v, ok := rec.Field(field)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func floatField(rec types.Record, field string) float64 {
	v, ok := rec.Field(field)
	if !ok {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return n
}

// formatInt groups thousands with commas, matching the display style of the
// chat UI.
func formatInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
