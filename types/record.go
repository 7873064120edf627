package types

import "strconv"

// Canonical CSV header names. Criteria keys produced by the language model
// are expected to come from this vocabulary.
const (
	FieldRecordID           = "RecordID"
	FieldYear               = "Year"
	FieldMonth              = "Month"
	FieldDistrict           = "District"
	FieldLocationName       = "LocationName"
	FieldLatitude           = "Latitude"
	FieldLongitude          = "Longitude"
	FieldMainRiver          = "MainRiver"
	FieldRiverLevel         = "RiverLevel"
	FieldMonthlyRainfall    = "MonthlyRainfall_mm"
	FieldFloodSeverity      = "FloodSeverity"
	FieldAffectedPopulation = "AffectedPopulation_Est"
	FieldLandslideCount     = "LandslideCount_Reported"
	FieldLandslideRisk      = "LandslideRisk"
	FieldFloodRiskForecast  = "FloodRiskForecast"
	FieldDataSource         = "DataSource"
)

// RainfallConditionKey is the helper key the model attaches next to a
// numeric rainfall value to express an above/below comparison. It is not a
// dataset field.
const RainfallConditionKey = "RainfallCondition"

// SchemaFields lists every declared dataset header, in source column order.
var SchemaFields = []string{
	FieldRecordID, FieldYear, FieldMonth, FieldDistrict, FieldLocationName,
	FieldLatitude, FieldLongitude, FieldMainRiver, FieldRiverLevel,
	FieldMonthlyRainfall, FieldFloodSeverity, FieldAffectedPopulation,
	FieldLandslideCount, FieldLandslideRisk, FieldFloodRiskForecast,
	FieldDataSource,
}

var schemaSet = func() map[string]bool {
	m := make(map[string]bool, len(SchemaFields))
	for _, f := range SchemaFields {
		m[f] = true
	}
	return m
}()

// IsSchemaField reports whether name is one of the declared dataset headers.
func IsSchemaField(name string) bool {
	return schemaSet[name]
}

// Record is one monthly observation. All fields are transported as text;
// headers missing from the source file are simply absent from the record.
// Records are immutable once constructed.
type Record struct {
	values map[string]string
}

// NewRecord builds a record from header-keyed text values. The map is copied
// so the caller cannot mutate the record afterwards.
func NewRecord(values map[string]string) Record {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Record{values: copied}
}

// Field returns the raw text value for a header and whether the header was
// present in the source data.
func (r Record) Field(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// ID returns the RecordID, or "" when absent.
func (r Record) ID() string {
	v, _ := r.Field(FieldRecordID)
	return v
}

// Coordinates parses and validates the latitude/longitude pair. ok is false
// when either value is missing, unparseable, or out of range.
func (r Record) Coordinates() (lat, lon float64, ok bool) {
	latStr, okLat := r.Field(FieldLatitude)
	lonStr, okLon := r.Field(FieldLongitude)
	if !okLat || !okLon {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// WithCoordinates returns a copy of the record with the latitude/longitude
// fields set. Used by the geocoding backfill before the store is sealed.
func (r Record) WithCoordinates(lat, lon float64) Record {
	copied := make(map[string]string, len(r.values)+2)
	for k, v := range r.values {
		copied[k] = v
	}
	copied[FieldLatitude] = strconv.FormatFloat(lat, 'f', -1, 64)
	copied[FieldLongitude] = strconv.FormatFloat(lon, 'f', -1, 64)
	return Record{values: copied}
}
