// Package search implements the flight search form: field state, validation
// order and user-facing notifications.
package search

import (
	"errors"
	"strings"
	"time"

	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
)

type CodeValidator interface {
	IsValid(code string) bool
}

// Validate checks the raw form fields in order and returns the normalized
// query. The first failing check wins.
func Validate(registry CodeValidator, origin, destination string, date *time.Time) (models.Query, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	if origin == "" || destination == "" || date == nil || date.IsZero() {
		return models.Query{}, derr.ErrMissingFields
	}

	upperOrigin := strings.ToUpper(origin)
	upperDestination := strings.ToUpper(destination)

	if !registry.IsValid(upperOrigin) {
		return models.Query{}, derr.ErrInvalidOrigin
	}
	if !registry.IsValid(upperDestination) {
		return models.Query{}, derr.ErrInvalidDestination
	}
	if upperOrigin == upperDestination {
		return models.Query{}, derr.ErrSameAirport
	}

	return models.Query{
		Origin:      models.IATACode(upperOrigin),
		Destination: models.IATACode(upperDestination),
		Date:        *date,
		Currency:    models.DefaultCurrency,
	}, nil
}

type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (n Notification) String() string {
	return "[" + n.Title + "] " + n.Message
}

var FetchFailedNotification = Notification{
	Title:   "Error",
	Message: "Failed to fetch flight prices. Please try again.",
}

// NotificationFor maps a validation or fetch error to the message shown to
// the user. Unknown errors collapse to the generic fetch failure.
func NotificationFor(err error) Notification {
	switch {
	case errors.Is(err, derr.ErrMissingFields):
		return Notification{Title: "Missing Information", Message: "Please fill in all fields before searching."}
	case errors.Is(err, derr.ErrInvalidOrigin):
		return Notification{Title: "Invalid Origin", Message: "Please enter a valid origin airport code."}
	case errors.Is(err, derr.ErrInvalidDestination):
		return Notification{Title: "Invalid Destination", Message: "Please enter a valid destination airport code."}
	case errors.Is(err, derr.ErrSameAirport):
		return Notification{Title: "Invalid Route", Message: "Origin and destination cannot be the same."}
	case errors.Is(err, derr.ErrPastDate):
		return Notification{Title: "Invalid Date", Message: "Departure date cannot be in the past."}
	case errors.Is(err, derr.ErrInvalidDate):
		return Notification{Title: "Invalid Date", Message: "Please enter the date as YYYY-MM-DD."}
	default:
		return FetchFailedNotification
	}
}

// Code is the stable machine-readable name of a validation error.
func Code(err error) string {
	switch {
	case errors.Is(err, derr.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, derr.ErrInvalidOrigin):
		return "invalid_origin"
	case errors.Is(err, derr.ErrInvalidDestination):
		return "invalid_destination"
	case errors.Is(err, derr.ErrSameAirport):
		return "same_airport"
	case errors.Is(err, derr.ErrPastDate):
		return "past_date"
	case errors.Is(err, derr.ErrInvalidDate):
		return "invalid_date"
	default:
		return "fetch_failed"
	}
}
