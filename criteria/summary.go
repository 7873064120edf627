package criteria

import (
	"fmt"
	"strings"

	"go-floodlens/types"
)

// Summary renders the criteria as a short human-readable phrase for the map
// notification, e.g. "District: Barpeta, FloodSeverity: High/Severe". Entries
// keep the criteria object's own key order; set values join with "/". When a
// rainfall range directive applies, the numeric rainfall entry is rendered as
// a single "Rainfall above 500mm" style phrase instead.
func Summary(crit types.Criteria) string {
	parts := make([]string, 0, len(crit.Entries))
	for _, entry := range crit.Entries {
		if entry.Field == types.FieldMonthlyRainfall && len(entry.Values) == 1 &&
			!entry.IsSet && rangeDirective(crit, entry.Values[0]) {
			parts = append(parts, fmt.Sprintf("Rainfall %s %smm", crit.RainfallOp, strings.TrimSpace(entry.Values[0])))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", entry.Field, strings.Join(entry.Values, "/")))
	}
	return strings.Join(parts, ", ")
}
