package dataset

import "errors"

var (
	ErrMissingColumn       = errors.New("missing expected column")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidStationsData = errors.New("invalid stations data")
	ErrReadingCSV          = errors.New("error reading csv")
)
