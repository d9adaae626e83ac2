package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredColumns(t *testing.T) {
	t.Parallel()

	withoutDemographics := RequiredColumns(false)
	assert.NotContains(t, withoutDemographics, GenderColumn)
	assert.NotContains(t, withoutDemographics, BirthYearColumn)
	assert.Contains(t, withoutDemographics, StartTimeColumn)

	withDemographics := RequiredColumns(true)
	assert.Contains(t, withDemographics, GenderColumn)
	assert.Contains(t, withDemographics, BirthYearColumn)
	assert.Len(t, withDemographics, len(withoutDemographics)+2)
}

func TestCombinedTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A - B", CombinedTrip("A", "B"))
}
