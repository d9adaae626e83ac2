package reporters

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/city"
)

const noTripsMessage = "No trips match the selected filter."

var separator = strings.Repeat("-", 40)

// Reporter prints a set of statistics about the trips of a dataset
type Reporter interface {
	GetType() string
	GetHeading() string
	Report(w io.Writer, df dataframe.DataFrame) error
}

// NewReporters returns the reporters to run for the given city, in the order they have to be printed:
// time, duration, station, user and, when the city has a stations file, distance
func NewReporters(explorerConfig *config.ExplorerConfig, c city.City) ([]Reporter, error) {
	cityConfig, err := explorerConfig.GetCityConfig(c)
	if err != nil {
		return nil, err
	}

	reporters := []Reporter{
		NewTimeStatsReporter(explorerConfig.TimestampLayout),
		NewDurationStatsReporter(),
		NewStationStatsReporter(),
		NewUserStatsReporter(cityConfig.HasDemographics),
	}

	stationsFilepath, ok := explorerConfig.GetStationsFilepath(c)
	if !ok {
		return reporters, nil
	}

	stations, err := dataset.LoadStations(stationsFilepath)
	if err != nil {
		return nil, fmt.Errorf("error loading stations of %s: %w", c, err)
	}
	return append(reporters, NewDistanceStatsReporter(stations)), nil
}

// Run prints the heading of the reporter, its statistics and how long it took to compute them
func Run(w io.Writer, reporter Reporter, df dataframe.DataFrame) error {
	fmt.Fprintf(w, "\n%s\n\n", reporter.GetHeading())
	startTime := time.Now()

	if df.Nrow() == 0 {
		fmt.Fprintln(w, noTripsMessage)
	} else if err := reporter.Report(w, df); err != nil {
		log.Errorf("[reporter: %s][method: Run][status: ERROR] %s", reporter.GetType(), err.Error())
		return fmt.Errorf("[reporter: %s] %w", reporter.GetType(), err)
	}

	fmt.Fprintf(w, "\nThis took %vs seconds.\n", time.Since(startTime).Seconds())
	fmt.Fprintln(w, separator)
	return nil
}

// countValues counts the values of a column ignoring the missing ones
func countValues(column series.Series) *frequencycounter.FrequencyCounter[string] {
	counter := frequencycounter.NewFrequencyCounter[string]()
	for i := 0; i < column.Len(); i++ {
		elem := column.Elem(i)
		if elem.IsNA() {
			continue
		}
		counter.UpdateCounter(elem.String())
	}
	return counter
}

func getColumn(df dataframe.DataFrame, name string) (series.Series, error) {
	column := df.Col(name)
	if column.Err != nil {
		return series.Series{}, fmt.Errorf("%w: %s", dataset.ErrMissingColumn, name)
	}
	return column, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
