package dataset

import (
	"encoding/csv"
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/timefilter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

var nanValues = []string{"", "NA", "NaN"}

// Loader reads the trips of a city and applies the time filter chosen by the user
type Loader struct {
	config *config.ExplorerConfig
}

func NewLoader(explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		config: explorerConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: loader][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: loader][method: %s][status: OK] %s", method, message)
}

// LoadData returns the trips of the given city that match the time filter, in the same order as the source file.
// Besides the source columns the result has the derived columns month (1-12) and day_of_week (e.g. Monday).
func (l *Loader) LoadData(c city.City, tf timefilter.TimeFilter) (dataframe.DataFrame, error) {
	cityConfig, err := l.config.GetCityConfig(c)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	tripsFilepath, err := l.config.GetTripsFilepath(c)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	df, err := readCSV(tripsFilepath, map[string]series.Type{
		trip.DurationColumn:  series.Float,
		trip.BirthYearColumn: series.Float,
	})
	if err != nil {
		log.Error(l.getLogMessage("LoadData", fmt.Sprintf("error reading trips of %s", c), err))
		return dataframe.DataFrame{}, err
	}
	log.Debug(l.getLogMessage("LoadData", fmt.Sprintf("read %v trips from %s", df.Nrow(), tripsFilepath), nil))

	err = checkColumns(df, trip.RequiredColumns(cityConfig.HasDemographics))
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %w", tripsFilepath, err)
	}

	startTimes, err := StartTimes(df, l.config.TimestampLayout)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %w", tripsFilepath, err)
	}

	df = FilterByTime(addDerivedColumns(df, startTimes), tf)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error filtering trips by %s: %w", tf, df.Err)
	}

	log.Debug(l.getLogMessage("LoadData", fmt.Sprintf("%v trips of %s match %s", df.Nrow(), c, tf), nil))
	return df, nil
}

// StartTimes parses the start time of every trip using layout
func StartTimes(df dataframe.DataFrame, layout string) ([]time.Time, error) {
	startTimeColumn := df.Col(trip.StartTimeColumn)
	if startTimeColumn.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, trip.StartTimeColumn)
	}

	startTimes := make([]time.Time, startTimeColumn.Len())
	for i := range startTimes {
		elem := startTimeColumn.Elem(i)
		if elem.IsNA() {
			return nil, fmt.Errorf("%w: row %v has no start time", ErrInvalidTimestamp, i+1)
		}

		startTime, err := time.Parse(layout, elem.String())
		if err != nil {
			return nil, fmt.Errorf("%w: row %v: %s", ErrInvalidTimestamp, i+1, err.Error())
		}
		startTimes[i] = startTime
	}

	return startTimes, nil
}

// FilterByTime keeps the trips whose derived month or day_of_week matches the filter.
// A filter without restrictions returns df as it is.
func FilterByTime(df dataframe.DataFrame, tf timefilter.TimeFilter) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	if month, ok := tf.Month(); ok {
		return df.Filter(dataframe.F{
			Colname:    trip.MonthColumn,
			Comparator: series.Eq,
			Comparando: int(month),
		})
	}

	if day, ok := tf.Day(); ok {
		return df.Filter(dataframe.F{
			Colname:    trip.DayOfWeekColumn,
			Comparator: series.Eq,
			Comparando: day.String(),
		})
	}

	return df
}

func addDerivedColumns(df dataframe.DataFrame, startTimes []time.Time) dataframe.DataFrame {
	months := make([]int, len(startTimes))
	weekdays := make([]string, len(startTimes))
	for i, startTime := range startTimes {
		months[i] = int(startTime.Month())
		weekdays[i] = startTime.Weekday().String()
	}

	return df.
		Mutate(series.New(months, series.Int, trip.MonthColumn)).
		Mutate(series.New(weekdays, series.String, trip.DayOfWeekColumn))
}

func checkColumns(df dataframe.DataFrame, required []string) error {
	names := df.Names()
	for _, column := range required {
		if !utils.ContainsString(column, names) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}
	return nil
}

// readCSV loads the csv at path. Columns listed in types get that type, the rest are strings.
// A file with a header and no rows gives an empty DataFrame with the header columns.
func readCSV(path string, types map[string]series.Type) (dataframe.DataFrame, error) {
	reader, closeFn, err := openFile(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	defer func() {
		if err := closeFn(); err != nil {
			log.Errorf("[component: dataset][method: readCSV][status: ERROR] error closing %s: %s", path, err.Error())
		}
	}()

	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w %s: %w", ErrReadingCSV, path, err)
	}

	if len(records) == 1 {
		log.Debugf("[component: dataset][method: readCSV][status: OK] %s has no rows", path)
		return emptyFrame(records[0], types), nil
	}

	df := dataframe.LoadRecords(
		records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w %s: %w", ErrReadingCSV, path, df.Err)
	}
	return df, nil
}

func emptyFrame(header []string, types map[string]series.Type) dataframe.DataFrame {
	columns := make([]series.Series, 0, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("X%v", i)
		}

		columnType, ok := types[name]
		if !ok {
			columnType = series.String
		}
		columns = append(columns, series.New([]string{}, columnType, name))
	}
	return dataframe.New(columns...)
}
