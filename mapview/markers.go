// Package mapview builds the marker payload the map client renders. Records
// with missing, unparseable, or out-of-range coordinates are discarded
// without failing the turn.
package mapview

import (
	"fmt"
	"strconv"
	"strings"

	"go-floodlens/types"
)

// Marker is one map pin plus its popup display fields.
type Marker struct {
	RecordID     string  `json:"recordId"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Title        string  `json:"title"`
	Color        string  `json:"color"`
	HasLandslide bool    `json:"hasLandslide"`
	Popup        Popup   `json:"popup"`
}

// Popup carries the display fields shown when a marker is opened.
type Popup struct {
	LocationName       string `json:"locationName"`
	District           string `json:"district"`
	Period             string `json:"period"`
	RainfallMM         string `json:"rainfallMm"`
	MainRiver          string `json:"mainRiver"`
	RiverLevel         string `json:"riverLevel"`
	FloodSeverity      string `json:"floodSeverity"`
	AffectedPopulation string `json:"affectedPopulation"`
	LandslideCount     string `json:"landslideCount"`
	LandslideRisk      string `json:"landslideRisk"`
	FloodRiskForecast  string `json:"floodRiskForecast"`
	DataSource         string `json:"dataSource"`
}

// BuildMarkers converts filtered records into markers, one per record with
// valid coordinates.
func BuildMarkers(records []types.Record) []Marker {
	markers := make([]Marker, 0, len(records))
	for _, rec := range records {
		lat, lon, ok := rec.Coordinates()
		if !ok {
			continue
		}

		name := field(rec, types.FieldLocationName)
		district := field(rec, types.FieldDistrict)
		month := field(rec, types.FieldMonth)
		year := field(rec, types.FieldYear)

		markers = append(markers, Marker{
			RecordID:     rec.ID(),
			Lat:          lat,
			Lon:          lon,
			Title:        fmt.Sprintf("%s, %s (%s/%s)", orDefault(name, "Location"), district, month, year),
			Color:        markerColor(rec),
			HasLandslide: landslideCount(rec) > 0,
			Popup: Popup{
				LocationName:       name,
				District:           district,
				Period:             month + "/" + year,
				RainfallMM:         field(rec, types.FieldMonthlyRainfall),
				MainRiver:          field(rec, types.FieldMainRiver),
				RiverLevel:         field(rec, types.FieldRiverLevel),
				FloodSeverity:      field(rec, types.FieldFloodSeverity),
				AffectedPopulation: field(rec, types.FieldAffectedPopulation),
				LandslideCount:     field(rec, types.FieldLandslideCount),
				LandslideRisk:      field(rec, types.FieldLandslideRisk),
				FloodRiskForecast:  field(rec, types.FieldFloodRiskForecast),
				DataSource:         field(rec, types.FieldDataSource),
			},
		})
	}
	return markers
}

// markerColor picks the pin color from flood severity, falling back to
// landslide risk when the record has no flood severity.
func markerColor(rec types.Record) string {
	severity := strings.ToLower(field(rec, types.FieldFloodSeverity))
	risk := strings.ToLower(field(rec, types.FieldLandslideRisk))

	switch severity {
	case "severe":
		return "darkred"
	case "high":
		return "red"
	case "medium":
		return "orange"
	case "low":
		return "gold"
	case "none", "":
		switch risk {
		case "high":
			return "purple"
		case "medium":
			return "darkblue"
		}
		return "#28a745"
	}
	return "grey"
}

func landslideCount(rec types.Record) int {
	n, err := strconv.Atoi(strings.TrimSpace(field(rec, types.FieldLandslideCount)))
	if err != nil {
		return 0
	}
	return n
}

func field(rec types.Record, name string) string {
	v, _ := rec.Field(name)
	return v
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
