package criteria

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-floodlens/types"
)

func rec(values map[string]string) types.Record {
	return types.NewRecord(values)
}

func TestNormalizeKinds(t *testing.T) {
	t.Run("scalar becomes substring match", func(t *testing.T) {
		crit, err := Parse(`{"District": "  Barpeta  "}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		_, ok := preds[0].(ScalarMatch)
		assert.True(t, ok)

		assert.True(t, preds[0].Match(rec(map[string]string{"District": "BARPETA"})))
		assert.False(t, preds[0].Match(rec(map[string]string{"District": "Dibrugarh"})))
	})

	t.Run("array becomes set match", func(t *testing.T) {
		crit, err := Parse(`{"FloodSeverity": ["High", "Severe"]}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		_, ok := preds[0].(SetMatch)
		assert.True(t, ok)

		assert.True(t, preds[0].Match(rec(map[string]string{"FloodSeverity": "Severe"})))
		assert.True(t, preds[0].Match(rec(map[string]string{"FloodSeverity": "high"})))
		assert.False(t, preds[0].Match(rec(map[string]string{"FloodSeverity": "Medium"})))
	})

	t.Run("month name and number normalize alike", func(t *testing.T) {
		for _, raw := range []string{`{"Month": "jul"}`, `{"Month": "7"}`} {
			crit, err := Parse(raw)
			require.NoError(t, err)

			preds := Normalize(crit)
			require.Len(t, preds, 1)
			assert.True(t, preds[0].Match(rec(map[string]string{"Month": "7"})), "raw=%s", raw)
			assert.False(t, preds[0].Match(rec(map[string]string{"Month": "8"})), "raw=%s", raw)
		}
	})

	t.Run("unparseable month fails closed", func(t *testing.T) {
		crit, err := Parse(`{"Month": "monsoon"}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		for m := 1; m <= 12; m++ {
			assert.False(t, preds[0].Match(rec(map[string]string{"Month": strconv.Itoa(m)})))
		}
	})

	t.Run("rainfall with directive becomes range match", func(t *testing.T) {
		crit, err := Parse(`{"MonthlyRainfall_mm": "500", "RainfallCondition": "above"}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		_, ok := preds[0].(RangeMatch)
		assert.True(t, ok)
	})

	t.Run("rainfall without directive degrades to substring match", func(t *testing.T) {
		crit, err := Parse(`{"MonthlyRainfall_mm": "500"}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		_, ok := preds[0].(ScalarMatch)
		assert.True(t, ok)

		// Substring semantics: "500" matches "1500" too. Documented behavior.
		assert.True(t, preds[0].Match(rec(map[string]string{"MonthlyRainfall_mm": "1500"})))
	})

	t.Run("rainfall with non-numeric threshold degrades to substring match", func(t *testing.T) {
		crit, err := Parse(`{"MonthlyRainfall_mm": "heavy", "RainfallCondition": "above"}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		_, ok := preds[0].(ScalarMatch)
		assert.True(t, ok)
	})

	t.Run("unknown key matches no record", func(t *testing.T) {
		crit, err := Parse(`{"Wind": "strong"}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		assert.False(t, preds[0].Match(rec(map[string]string{"District": "Barpeta"})))
	})

	t.Run("empty criterion text is vacuous on present field", func(t *testing.T) {
		crit, err := Parse(`{"District": "  "}`)
		require.NoError(t, err)

		preds := Normalize(crit)
		require.Len(t, preds, 1)
		assert.True(t, preds[0].Match(rec(map[string]string{"District": "Barpeta"})))
		// Missing field still fails before the vacuous check.
		assert.False(t, preds[0].Match(rec(map[string]string{"Year": "2023"})))
	})
}

func TestRangeMatchStrictness(t *testing.T) {
	crit, err := Parse(`{"MonthlyRainfall_mm": "500", "RainfallCondition": "above"}`)
	require.NoError(t, err)
	preds := Normalize(crit)
	require.Len(t, preds, 1)

	assert.False(t, preds[0].Match(rec(map[string]string{"MonthlyRainfall_mm": "500"})), "strict inequality excludes the threshold")
	assert.True(t, preds[0].Match(rec(map[string]string{"MonthlyRainfall_mm": "501"})))
	assert.False(t, preds[0].Match(rec(map[string]string{"MonthlyRainfall_mm": "n/a"})), "non-numeric record value fails")

	crit, err = Parse(`{"MonthlyRainfall_mm": "500", "RainfallCondition": "below"}`)
	require.NoError(t, err)
	preds = Normalize(crit)
	require.Len(t, preds, 1)

	assert.False(t, preds[0].Match(rec(map[string]string{"MonthlyRainfall_mm": "500"})))
	assert.True(t, preds[0].Match(rec(map[string]string{"MonthlyRainfall_mm": "499.5"})))
}
