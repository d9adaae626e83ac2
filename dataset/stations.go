package dataset

import (
	"fmt"

	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
)

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// LoadStations reads a csv with the columns name, latitude and longitude.
// Returns a map with the following structure: {stationName: station.StationData}
func LoadStations(path string) (map[string]station.StationData, error) {
	df, err := readCSV(path, map[string]series.Type{
		stationLatitudeColumn:  series.Float,
		stationLongitudeColumn: series.Float,
	})
	if err != nil {
		return nil, err
	}

	err = checkColumns(df, []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	names := df.Col(stationNameColumn)
	latitudes := df.Col(stationLatitudeColumn)
	longitudes := df.Col(stationLongitudeColumn)

	stations := make(map[string]station.StationData, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		name, latitude, longitude := names.Elem(i), latitudes.Elem(i), longitudes.Elem(i)
		if name.IsNA() || latitude.IsNA() || longitude.IsNA() {
			return nil, fmt.Errorf("%w: row %v of %s is incomplete", ErrInvalidStationsData, i+1, path)
		}

		stations[name.String()] = station.StationData{
			Name:      name.String(),
			Latitude:  latitude.Float(),
			Longitude: longitude.Float(),
		}
	}

	log.Debugf("[component: dataset][method: LoadStations][status: OK] %v stations read from %s", len(stations), path)
	return stations, nil
}
