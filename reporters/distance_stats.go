package reporters

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// DistanceStatsReporter prints the distance traveled in the trips whose start and end stations have known coordinates
// + stations: {stationName: station.StationData}
// + distancesCache: {"start - end": distance in km}
type DistanceStatsReporter struct {
	stations       map[string]station.StationData
	distancesCache map[string]float64
}

func NewDistanceStatsReporter(stations map[string]station.StationData) *DistanceStatsReporter {
	return &DistanceStatsReporter{
		stations:       stations,
		distancesCache: make(map[string]float64),
	}
}

func (dr *DistanceStatsReporter) GetType() string {
	return "distance-stats"
}

func (dr *DistanceStatsReporter) GetHeading() string {
	return "Calculating Distance Traveled..."
}

func (dr *DistanceStatsReporter) Report(w io.Writer, df dataframe.DataFrame) error {
	startStations, err := getColumn(df, trip.StartStationColumn)
	if err != nil {
		return err
	}
	endStations, err := getColumn(df, trip.EndStationColumn)
	if err != nil {
		return err
	}

	accumulator := distanceaccumulator.NewDistanceAccumulator()
	for i := 0; i < df.Nrow(); i++ {
		distance, ok := dr.getDistance(startStations.Elem(i).String(), endStations.Elem(i).String())
		if ok {
			accumulator.UpdateAccumulator(distance)
		}
	}

	average, ok := accumulator.GetAverageDistance()
	if !ok {
		fmt.Fprintln(w, "No trips between stations with known coordinates.")
		return nil
	}

	fmt.Fprintf(w, "Trips With Known Stations: %v\n", accumulator.Counter)
	fmt.Fprintf(w, "The Total Distance Traveled (km): %.2f\n", accumulator.TotalDistance)
	fmt.Fprintf(w, "The Average Distance Traveled (km): %.2f\n", average)
	return nil
}

// getDistance returns the distance between both stations. The bool is false if any of them is unknown
func (dr *DistanceStatsReporter) getDistance(startStationName string, endStationName string) (float64, bool) {
	key := trip.CombinedTrip(startStationName, endStationName)
	if distance, ok := dr.distancesCache[key]; ok {
		return distance, true
	}

	startStation, ok := dr.stations[startStationName]
	if !ok {
		return 0, false
	}
	endStation, ok := dr.stations[endStationName]
	if !ok {
		return 0, false
	}

	log.Debugf("[reporter: %s][method: getDistance] distance of %s not found in cache", dr.GetType(), key)
	distance := startStation.DistanceTo(endStation)
	dr.distancesCache[key] = distance
	return distance, true
}
