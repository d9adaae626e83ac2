package distanceaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceAccumulator(t *testing.T) {
	t.Parallel()

	t.Run("no trips measured", func(t *testing.T) {
		t.Parallel()

		_, ok := NewDistanceAccumulator().GetAverageDistance()
		assert.False(t, ok)
	})

	t.Run("average of updates", func(t *testing.T) {
		t.Parallel()

		da := NewDistanceAccumulator()
		da.UpdateAccumulator(1.5)
		da.UpdateAccumulator(2.5)

		average, ok := da.GetAverageDistance()
		assert.True(t, ok)
		assert.InDelta(t, 2.0, average, 1e-9)
		assert.Equal(t, 2, da.Counter)
	})
}
