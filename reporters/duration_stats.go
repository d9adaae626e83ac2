package reporters

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/domain/entities/trip"
)

// DurationStatsReporter prints the total and the average trip duration in seconds
type DurationStatsReporter struct{}

func NewDurationStatsReporter() *DurationStatsReporter {
	return &DurationStatsReporter{}
}

func (dr *DurationStatsReporter) GetType() string {
	return "duration-stats"
}

func (dr *DurationStatsReporter) GetHeading() string {
	return "Calculating Trip Duration..."
}

func (dr *DurationStatsReporter) Report(w io.Writer, df dataframe.DataFrame) error {
	durationColumn, err := getColumn(df, trip.DurationColumn)
	if err != nil {
		return err
	}

	total, mean := sumAndMean(durationColumn.Float())
	fmt.Fprintf(w, "The Total Travel Time (sec): %s\n", formatFloat(total))
	fmt.Fprintf(w, "The Average Travel Time (sec): %s\n", formatFloat(mean))
	return nil
}

// sumAndMean skips missing values. The mean of no values is NaN
func sumAndMean(values []float64) (float64, float64) {
	total := 0.0
	counter := 0
	for _, value := range values {
		if math.IsNaN(value) {
			continue
		}
		total += value
		counter += 1
	}

	if counter == 0 {
		return total, math.NaN()
	}
	return total, total / float64(counter)
}
