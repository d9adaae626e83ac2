package reporters

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/timefilter"
	"bikeshare/domain/entities/trip"
)

func TestUserStatsReporter_WithDemographics(t *testing.T) {
	t.Parallel()

	out := report(t, NewUserStatsReporter(true), loadTrips(t, city.Chicago, timefilter.NoFilter()))

	assert.Contains(t, out, "The Counts By User Type Are:\n  Subscriber: 5\n  Customer: 2\n")
	assert.Contains(t, out, "The Counts By Gender Type Are:\n  Male: 4\n  Female: 2\n")
	assert.NotContains(t, out, "NaN")
	assert.Contains(t, out, "The Earliest Year Of Birth: 1972\n")
	assert.Contains(t, out, "The Most Recent Year Of Birth: 2001\n")
	assert.Contains(t, out, "The Most Common Year Of Birth: 1985\n")
}

func TestUserStatsReporter_Washington(t *testing.T) {
	t.Parallel()

	out := report(t, NewUserStatsReporter(false), loadTrips(t, city.Washington, timefilter.NoFilter()))

	assert.Contains(t, out, "  Subscriber: 2\n  Customer: 1\n")
	for _, forbidden := range []string{"Gender", "Birth"} {
		assert.False(t, strings.Contains(out, forbidden), "output mentions %s", forbidden)
	}
}

func TestUserStatsReporter_NoBirthYears(t *testing.T) {
	t.Parallel()

	df := dataframe.New(
		series.New([]string{"Subscriber", "Customer"}, series.String, trip.UserTypeColumn),
		series.New([]string{"Male", "NaN"}, series.String, trip.GenderColumn),
		series.New([]string{"NaN", "NaN"}, series.Float, trip.BirthYearColumn),
	)

	out := report(t, NewUserStatsReporter(true), df)
	assert.Contains(t, out, "  Male: 1\n")
	assert.Contains(t, out, "No birth year data available.")
	assert.NotContains(t, out, "Earliest")
}
