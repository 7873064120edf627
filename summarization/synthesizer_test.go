package summarization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-floodlens/criteria"
	"go-floodlens/types"
)

func rec(values map[string]string) types.Record {
	return types.NewRecord(values)
}

func crit(t *testing.T, raw string) types.Criteria {
	t.Helper()
	c, err := criteria.Parse(raw)
	require.NoError(t, err)
	return c
}

func TestSynthesizePopulation(t *testing.T) {
	records := []types.Record{
		rec(map[string]string{"District": "Nagaon", "AffectedPopulation_Est": "1000"}),
		rec(map[string]string{"District": "Nagaon", "AffectedPopulation_Est": "2000"}),
		rec(map[string]string{"District": "Barpeta", "AffectedPopulation_Est": "3000"}),
	}

	got := Synthesize("how many people were affected?", records, crit(t, `{"Year": "2023"}`))

	assert.Contains(t, got, "approximately 6,000 people were affected")
	assert.Contains(t, got, "in 2023")
	assert.Contains(t, got, "across 2 districts in Assam")
	// Worst-hit is the single record with the highest value, not a district
	// aggregate: Nagaon totals 3000 too, but no single Nagaon record beats 3000.
	assert.Contains(t, got, "with Barpeta being the worst affected (3,000 people)")
}

func TestSynthesizePopulationWithDistrictCriterion(t *testing.T) {
	records := []types.Record{
		rec(map[string]string{"District": "Nagaon", "AffectedPopulation_Est": "1500"}),
	}

	got := Synthesize("affected population", records, crit(t, `{"District": "Nagaon", "Month": "7"}`))

	assert.Contains(t, got, "in Nagaon district")
	assert.Contains(t, got, "during July")
	assert.NotContains(t, got, "worst affected")
}

func TestSynthesizeSetValuedDistrictListsAllAlternatives(t *testing.T) {
	records := []types.Record{
		rec(map[string]string{"District": "Barpeta", "AffectedPopulation_Est": "1000"}),
		rec(map[string]string{"District": "Nagaon", "AffectedPopulation_Est": "2000"}),
	}

	got := Synthesize("affected population", records, crit(t, `{"District": ["Barpeta", "Nagaon"]}`))

	assert.Contains(t, got, "in Barpeta/Nagaon district")
	assert.NotContains(t, got, "in Barpeta district")
}

func TestSynthesizeRainfall(t *testing.T) {
	t.Run("reports mean, max, and max location", func(t *testing.T) {
		records := []types.Record{
			rec(map[string]string{"District": "Nagaon", "LocationName": "Kampur", "MonthlyRainfall_mm": "400"}),
			rec(map[string]string{"District": "Barpeta", "LocationName": "Howly", "MonthlyRainfall_mm": "600"}),
			rec(map[string]string{"District": "Cachar", "MonthlyRainfall_mm": ""}),
		}

		got := Synthesize("how much rain fell?", records, crit(t, `{"Year": "2022"}`))

		assert.Contains(t, got, "The average rainfall was 500.0 mm")
		assert.Contains(t, got, "in 2022")
		assert.Contains(t, got, "highest recorded rainfall was 600.0 mm in Howly")
	})

	t.Run("no positive values yields the unavailable sentence", func(t *testing.T) {
		records := []types.Record{
			rec(map[string]string{"District": "Cachar", "MonthlyRainfall_mm": ""}),
			rec(map[string]string{"District": "Nagaon", "MonthlyRainfall_mm": "0"}),
		}

		got := Synthesize("rainfall levels", records, crit(t, `{"District": "Cachar"}`))
		assert.Equal(t, "I found 2 locations matching your query, but rainfall data is unavailable.", got)
	})
}

func TestSynthesizeFlood(t *testing.T) {
	records := []types.Record{
		rec(map[string]string{"FloodSeverity": "Severe"}),
		rec(map[string]string{"FloodSeverity": "High"}),
		rec(map[string]string{"FloodSeverity": "Low"}),
		rec(map[string]string{"FloodSeverity": "None"}),
	}

	got := Synthesize("show flood records", records, crit(t, `{"Year": "2023", "Month": "6"}`))

	assert.Contains(t, got, "I found 4 flood records")
	assert.Contains(t, got, "from 2023")
	assert.Contains(t, got, "in June")
	assert.Contains(t, got, "2 were classified as severe or high severity floods")
}

func TestSynthesizeLandslide(t *testing.T) {
	records := []types.Record{
		rec(map[string]string{"LandslideCount_Reported": "3", "LandslideRisk": "High"}),
		rec(map[string]string{"LandslideCount_Reported": "2", "LandslideRisk": "Low"}),
	}

	got := Synthesize("any landslide activity?", records, crit(t, `{"District": "Dima Hasao"}`))

	assert.Contains(t, got, "I found data on 5 reported landslides")
	assert.Contains(t, got, "in Dima Hasao")
	assert.Contains(t, got, "1 locations classified as high landslide risk areas")
}

func TestSynthesizeGeneric(t *testing.T) {
	t.Run("few districts listed by name", func(t *testing.T) {
		records := []types.Record{
			rec(map[string]string{"District": "Barpeta"}),
			rec(map[string]string{"District": "Nagaon"}),
			rec(map[string]string{"District": "Barpeta"}),
		}

		got := Synthesize("what data do you have?", records, crit(t, `{"Year": "2021"}`))
		assert.Contains(t, got, "I found 3 records matching your criteria")
		assert.Contains(t, got, "across Barpeta, Nagaon")
	})

	t.Run("five or more districts counted", func(t *testing.T) {
		var records []types.Record
		for _, d := range []string{"Barpeta", "Nagaon", "Cachar", "Dhemaji", "Kamrup"} {
			records = append(records, rec(map[string]string{"District": d}))
		}

		got := Synthesize("summary please", records, crit(t, `{"Year": "2021"}`))
		assert.Contains(t, got, "across 5 districts in Assam")
	})
}

func TestSynthesizeCategoryPriority(t *testing.T) {
	records := []types.Record{
		rec(map[string]string{"District": "Barpeta", "AffectedPopulation_Est": "100", "FloodSeverity": "Severe"}),
	}

	// Population outranks flood even when both keywords appear.
	got := Synthesize("population affected by severe floods", records, crit(t, `{}`))
	assert.Contains(t, got, "people were affected")
	assert.NotContains(t, got, "flood records")
}

func TestSynthesizeIsPure(t *testing.T) {
	records := []types.Record{
		rec(map[string]string{"District": "Barpeta", "AffectedPopulation_Est": "100"}),
	}
	c := crit(t, `{"Year": "2023"}`)

	first := Synthesize("affected population", records, c)
	second := Synthesize("affected population", records, c)
	assert.Equal(t, first, second)
}
