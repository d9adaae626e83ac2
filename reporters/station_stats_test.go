package reporters

import (
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/timefilter"
	"bikeshare/domain/entities/trip"
)

func TestStationStatsReporter(t *testing.T) {
	t.Parallel()

	out := report(t, NewStationStatsReporter(), loadTrips(t, city.Chicago, timefilter.NoFilter()))

	assert.Contains(t, out, "Most Common Start Station: Clark St & Elm St\n")
	assert.Contains(t, out, "Most Common End Station: Canal St & Adams St\n")
	assert.Contains(t, out, "Most Common Trip Taken: Clark St & Elm St - Canal St & Adams St\n")
}

func TestCombinedTrips(t *testing.T) {
	t.Parallel()

	starts := series.New([]string{"A", "NaN", "C"}, series.String, trip.StartStationColumn)
	ends := series.New([]string{"B", "B", "D"}, series.String, trip.EndStationColumn)

	trips := combinedTrips(starts, ends)
	assert.Equal(t, trip.TripColumn, trips.Name)
	assert.Equal(t, "A - B", trips.Elem(0).String())
	assert.True(t, trips.Elem(1).IsNA())
	assert.Equal(t, "C - D", trips.Elem(2).String())
	assert.Equal(t, 2, countValues(trips).GetTotal())
}
