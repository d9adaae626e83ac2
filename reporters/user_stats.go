package reporters

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
)

// UserStatsReporter prints the amount of trips per user type and, for cities with demographic data,
// the amount of trips per gender and the earliest, most recent and most common year of birth
type UserStatsReporter struct {
	hasDemographics bool
}

func NewUserStatsReporter(hasDemographics bool) *UserStatsReporter {
	return &UserStatsReporter{
		hasDemographics: hasDemographics,
	}
}

func (ur *UserStatsReporter) GetType() string {
	return "user-stats"
}

func (ur *UserStatsReporter) GetHeading() string {
	return "Calculating User Stats..."
}

func (ur *UserStatsReporter) Report(w io.Writer, df dataframe.DataFrame) error {
	userTypes, err := getColumn(df, trip.UserTypeColumn)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "The Counts By User Type Are:")
	printValueCounts(w, countValues(userTypes))

	if !ur.hasDemographics {
		return nil
	}

	genders, err := getColumn(df, trip.GenderColumn)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nThe Counts By Gender Type Are:")
	printValueCounts(w, countValues(genders))

	birthYearColumn, err := getColumn(df, trip.BirthYearColumn)
	if err != nil {
		return err
	}

	var birthYears []int
	for _, birthYear := range birthYearColumn.Float() {
		if math.IsNaN(birthYear) {
			continue
		}
		birthYears = append(birthYears, int(birthYear))
	}

	if len(birthYears) == 0 {
		fmt.Fprintln(w, "\nNo birth year data available.")
		return nil
	}

	earliest, mostRecent := birthYears[0], birthYears[0]
	for _, birthYear := range birthYears[1:] {
		earliest = min(earliest, birthYear)
		mostRecent = max(mostRecent, birthYear)
	}
	mostCommon, _, _ := frequencycounter.NewFrequencyCounterWithData(birthYears).Mode()

	fmt.Fprintf(w, "\nThe Earliest Year Of Birth: %v\n", earliest)
	fmt.Fprintf(w, "The Most Recent Year Of Birth: %v\n", mostRecent)
	fmt.Fprintf(w, "The Most Common Year Of Birth: %v\n", mostCommon)
	return nil
}

func printValueCounts(w io.Writer, counter *frequencycounter.FrequencyCounter[string]) {
	for _, valueCount := range counter.ValueCounts() {
		fmt.Fprintf(w, "  %s: %v\n", valueCount.Value, valueCount.Count)
	}
}
