package trip

// Columns read from the city files
const (
	StartTimeColumn    = "Start Time"
	EndTimeColumn      = "End Time"
	DurationColumn     = "Trip Duration"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"
)

// Columns derived from StartTimeColumn
const (
	MonthColumn     = "month"
	DayOfWeekColumn = "day_of_week"
	HourColumn      = "hour"
	TripColumn      = "trip"
)

const combinedTripSeparator = " - "

// RequiredColumns returns the columns that must be present in a city file.
// Gender and birth year only exist for cities with demographic data.
func RequiredColumns(hasDemographics bool) []string {
	columns := []string{
		StartTimeColumn,
		DurationColumn,
		StartStationColumn,
		EndStationColumn,
		UserTypeColumn,
	}
	if hasDemographics {
		columns = append(columns, GenderColumn, BirthYearColumn)
	}
	return columns
}

// CombinedTrip returns the identity of a trip between two stations, e.g. "Canal St & Adams St - Clark St & Elm St"
func CombinedTrip(startStation string, endStation string) string {
	return startStation + combinedTripSeparator + endStation
}
