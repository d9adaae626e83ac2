package reporters

import (
	"fmt"
	"io"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
)

// TimeStatsReporter prints the most frequent month, day of week and start hour
type TimeStatsReporter struct {
	timestampLayout string
}

func NewTimeStatsReporter(timestampLayout string) *TimeStatsReporter {
	return &TimeStatsReporter{
		timestampLayout: timestampLayout,
	}
}

func (tr *TimeStatsReporter) GetType() string {
	return "time-stats"
}

func (tr *TimeStatsReporter) GetHeading() string {
	return "Calculating The Most Frequent Times of Travel..."
}

func (tr *TimeStatsReporter) Report(w io.Writer, df dataframe.DataFrame) error {
	monthColumn, err := getColumn(df, trip.MonthColumn)
	if err != nil {
		return err
	}
	months, err := monthColumn.Int()
	if err != nil {
		return err
	}
	popularMonth, _, _ := frequencycounter.NewFrequencyCounterWithData(months).Mode()
	fmt.Fprintf(w, "Most Common Month: %v (%s)\n", popularMonth, time.Month(popularMonth))

	dayColumn, err := getColumn(df, trip.DayOfWeekColumn)
	if err != nil {
		return err
	}
	popularDay, _, _ := countValues(dayColumn).Mode()
	fmt.Fprintf(w, "Most Common Day Of Week: %s\n", popularDay)

	df, err = tr.withHour(df)
	if err != nil {
		return err
	}
	hours, err := df.Col(trip.HourColumn).Int()
	if err != nil {
		return err
	}
	popularHour, _, _ := frequencycounter.NewFrequencyCounterWithData(hours).Mode()
	fmt.Fprintf(w, "Most Popular Start Hour: %v\n", popularHour)

	return nil
}

// withHour adds the hour column derived from the start time
func (tr *TimeStatsReporter) withHour(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	startTimes, err := dataset.StartTimes(df, tr.timestampLayout)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	hours := make([]int, len(startTimes))
	for i, startTime := range startTimes {
		hours[i] = startTime.Hour()
	}

	df = df.Mutate(series.New(hours, series.Int, trip.HourColumn))
	return df, df.Err
}
