package errors

import "errors"

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrInvalidOrigin      = errors.New("invalid origin iata")
	ErrInvalidDestination = errors.New("invalid destination iata")
	ErrSameAirport        = errors.New("origin equals destination")
	ErrPastDate           = errors.New("departure date is in the past")
	ErrInvalidDate        = errors.New("invalid departure date")
	ErrFetchFailed        = errors.New("fetch prices failed")
	ErrEmptyAPIKey        = errors.New("pricing api key is empty")
)

// IsValidation reports whether err was produced by query validation rather
// than by the pricing source.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidOrigin) ||
		errors.Is(err, ErrInvalidDestination) ||
		errors.Is(err, ErrSameAirport) ||
		errors.Is(err, ErrPastDate) ||
		errors.Is(err, ErrInvalidDate)
}
