package reporters

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"bikeshare/domain/entities/trip"
)

// StationStatsReporter prints the most popular start station, end station and trip
type StationStatsReporter struct{}

func NewStationStatsReporter() *StationStatsReporter {
	return &StationStatsReporter{}
}

func (sr *StationStatsReporter) GetType() string {
	return "station-stats"
}

func (sr *StationStatsReporter) GetHeading() string {
	return "Calculating The Most Popular Stations and Trip..."
}

func (sr *StationStatsReporter) Report(w io.Writer, df dataframe.DataFrame) error {
	startStations, err := getColumn(df, trip.StartStationColumn)
	if err != nil {
		return err
	}
	endStations, err := getColumn(df, trip.EndStationColumn)
	if err != nil {
		return err
	}

	popularStartStation, _, _ := countValues(startStations).Mode()
	fmt.Fprintf(w, "Most Common Start Station: %s\n", popularStartStation)

	popularEndStation, _, _ := countValues(endStations).Mode()
	fmt.Fprintf(w, "Most Common End Station: %s\n", popularEndStation)

	df = df.Mutate(combinedTrips(startStations, endStations))
	if df.Err != nil {
		return df.Err
	}
	popularTrip, _, _ := countValues(df.Col(trip.TripColumn)).Mode()
	fmt.Fprintf(w, "Most Common Trip Taken: %s\n", popularTrip)

	return nil
}

// combinedTrips returns the trip column: "start - end" for each row, NaN when a station is missing
func combinedTrips(startStations series.Series, endStations series.Series) series.Series {
	trips := make([]string, startStations.Len())
	for i := range trips {
		start, end := startStations.Elem(i), endStations.Elem(i)
		if start.IsNA() || end.IsNA() {
			trips[i] = "NaN"
			continue
		}
		trips[i] = trip.CombinedTrip(start.String(), end.String())
	}
	return series.New(trips, series.String, trip.TripColumn)
}
