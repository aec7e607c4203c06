package cities

import "errors"

var (
	// ErrMalformedRecord is returned for a record without exactly three fields.
	ErrMalformedRecord = errors.New("cities: malformed record")

	// ErrBadDelimiter is returned by CheckDelimiter for a reserved rune.
	ErrBadDelimiter = errors.New("cities: bad delimiter")

	// ErrBadCoordinate is returned when x or y is not a number.
	ErrBadCoordinate = errors.New("cities: bad coordinate")
)
