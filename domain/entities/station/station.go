package station

import "github.com/umahmood/haversine"

// StationData coordinates of a station, identified by its name in the trips file
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (sd StationData) GetCoordinates() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}

// DistanceTo returns the distance in kilometers between both stations using haversine formula
func (sd StationData) DistanceTo(other StationData) float64 {
	_, km := haversine.Distance(sd.GetCoordinates(), other.GetCoordinates())
	return km
}
