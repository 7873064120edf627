package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordCopiesInput(t *testing.T) {
	src := map[string]string{FieldDistrict: "Sivasagar"}
	r := NewRecord(src)

	src[FieldDistrict] = "Dibrugarh"

	district, ok := r.Field(FieldDistrict)
	require.True(t, ok)
	assert.Equal(t, "Sivasagar", district)
}

func TestFieldDistinguishesMissingFromEmpty(t *testing.T) {
	r := NewRecord(map[string]string{FieldMainRiver: ""})

	v, ok := r.Field(FieldMainRiver)
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = r.Field(FieldRiverLevel)
	assert.False(t, ok)
}

func TestCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{
			name:    "valid pair",
			values:  map[string]string{FieldLatitude: "26.98", FieldLongitude: "94.63"},
			wantLat: 26.98, wantLon: 94.63, wantOK: true,
		},
		{
			name:   "missing longitude",
			values: map[string]string{FieldLatitude: "26.98"},
		},
		{
			name:   "unparseable latitude",
			values: map[string]string{FieldLatitude: "north", FieldLongitude: "94.63"},
		},
		{
			name:   "latitude out of range",
			values: map[string]string{FieldLatitude: "91.0", FieldLongitude: "94.63"},
		},
		{
			name:   "longitude out of range",
			values: map[string]string{FieldLatitude: "26.98", FieldLongitude: "-181"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lat, lon, ok := NewRecord(tc.values).Coordinates()
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.InDelta(t, tc.wantLat, lat, 1e-9)
				assert.InDelta(t, tc.wantLon, lon, 1e-9)
			}
		})
	}
}

func TestWithCoordinatesDoesNotMutateOriginal(t *testing.T) {
	orig := NewRecord(map[string]string{FieldDistrict: "Barpeta"})

	filled := orig.WithCoordinates(26.32, 91.0)

	_, _, ok := orig.Coordinates()
	assert.False(t, ok)

	lat, lon, ok := filled.Coordinates()
	require.True(t, ok)
	assert.InDelta(t, 26.32, lat, 1e-9)
	assert.InDelta(t, 91.0, lon, 1e-9)

	district, _ := filled.Field(FieldDistrict)
	assert.Equal(t, "Barpeta", district)
}

func TestIsSchemaField(t *testing.T) {
	assert.True(t, IsSchemaField(FieldMonthlyRainfall))
	assert.False(t, IsSchemaField(RainfallConditionKey))
	assert.False(t, IsSchemaField("Rainfall"))
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"jul", 7, true},
		{"JUL", 7, true},
		{" dec ", 12, true},
		{"7", 7, true},
		{"07", 7, true},
		{"12", 12, true},
		{"0", 0, false},
		{"13", 0, false},
		{"july", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			n, ok := MonthNumber(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestMonthName(t *testing.T) {
	name, ok := MonthName(7)
	require.True(t, ok)
	assert.Equal(t, "July", name)

	_, ok = MonthName(0)
	assert.False(t, ok)
	_, ok = MonthName(13)
	assert.False(t, ok)
}
