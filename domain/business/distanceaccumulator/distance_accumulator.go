package distanceaccumulator

// DistanceAccumulator struct that collects data about the distance traveled in a set of trips
// + Counter: counts the amount of trips measured
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

// GetAverageDistance returns the mean distance per trip. The bool is false if no trip was measured
func (da *DistanceAccumulator) GetAverageDistance() (float64, bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDistance / float64(da.Counter), true
}
