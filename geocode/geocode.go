package geocode

import (
	"context"
	"fmt"
	"sync"

	"googlemaps.github.io/maps"

	"go-floodlens/logging"
	"go-floodlens/types"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient(apiKey string) (*maps.Client, error) {
	clientOnce.Do(func() {
		if apiKey == "" {
			clientErr = fmt.Errorf("maps api key not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, clientErr
}

// LookupCoordinates forward-geocodes a place description, biased to India.
func LookupCoordinates(ctx context.Context, client *maps.Client, address string) (lat, lon float64, err error) {
	req := &maps.GeocodingRequest{
		Address: address,
		Region:  "in",
	}

	results, err := client.Geocode(ctx, req)
	if err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", address)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// Backfill fills in coordinates for records whose latitude/longitude are
// missing or unparseable, geocoding "LocationName, District, Assam, India".
// Best effort: failures are logged and the record is left untouched. Returns
// the number of records filled.
func Backfill(ctx context.Context, records []types.Record, apiKey string) int {
	log := logging.GetLogger()

	client, err := InitMapsClient(apiKey)
	if err != nil {
		log.WithError(err).Warn("geocoding disabled")
		return 0
	}

	filled := 0
	for i, rec := range records {
		if _, _, ok := rec.Coordinates(); ok {
			continue
		}

		name, _ := rec.Field(types.FieldLocationName)
		district, _ := rec.Field(types.FieldDistrict)
		if name == "" && district == "" {
			continue
		}

		address := district + ", Assam, India"
		if name != "" {
			address = name + ", " + address
		}

		lat, lon, err := LookupCoordinates(ctx, client, address)
		if err != nil {
			log.WithError(err).WithField("record", rec.ID()).Warn("coordinate backfill failed")
			continue
		}

		records[i] = rec.WithCoordinates(lat, lon)
		filled++
	}

	if filled > 0 {
		log.WithField("filled", filled).Info("backfilled record coordinates")
	}
	return filled
}
