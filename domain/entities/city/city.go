package city

import (
	"errors"
	"fmt"

	"bikeshare/utils"
)

// City one of the cities with bike share data available
type City string

const (
	Chicago    City = "chicago"
	NewYork    City = "new york"
	Washington City = "washington"
)

var ErrUnknownCity = errors.New("unknown city")

var cities = []City{Chicago, NewYork, Washington}

// All returns the supported cities in menu order
func All() []City {
	result := make([]City, len(cities))
	copy(result, cities)
	return result
}

// Names returns the canonical lower-case names of the supported cities
func Names() []string {
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, string(c))
	}
	return names
}

// ParseCity matches the input against the supported cities ignoring letter case
func ParseCity(input string) (City, error) {
	name := utils.NormalizeInput(input)
	if !utils.ContainsString(name, Names()) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, input)
	}
	return City(name), nil
}

// HasDemographics returns whether the trips of the city can have the Gender and Birth Year columns.
// Washington trips never have them.
func (c City) HasDemographics() bool {
	return c != Washington
}

func (c City) String() string {
	return string(c)
}
