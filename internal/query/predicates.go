// Package query maps informal search intent, either structured filter
// objects or free-text strings, onto canonical predicate sets that the
// repository turns into SQL WHERE clauses. Predicate sets are request-scoped
// values; nothing here touches the database.
package query

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultPassengerLimit  = 100
	DefaultCrewLimit       = 50
	DefaultAssignmentLimit = 100
	DefaultAvailableLimit  = 20
)

// Defaults is the externally configured default filter, applied only when
// the corresponding key is absent from both the body and the free-text query.
type Defaults struct {
	MinSeats *int
	Limit    int
}

// FlightPredicates is the canonical predicate set for one flight search.
// Zero-valued fields impose no constraint. String values are normalized to
// upper case to match the stored column values.
type FlightPredicates struct {
	Origin          string
	Destination     string
	Status          string
	FlightNo        string
	MinSeats        *int
	ExcludeStatus   []string
	DepartureAfter  string
	DepartureBefore string
	ArrivalAfter    string
	ArrivalBefore   string
	Limit           int
}

// FilterError reports a structured filter value of the wrong shape. Handlers
// map it to a client-error response.
type FilterError struct {
	Field  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var airportCodeRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

func normalizeAirportCode(field, value string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(value))
	if !airportCodeRe.MatchString(code) {
		return "", &FilterError{Field: field, Reason: "must be a 3-letter airport code"}
	}
	return code, nil
}

// validateClockTime accepts HH:MM or HH:MM:SS, the shapes the time-of-day
// filters are compared against.
func validateClockTime(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if _, err := time.Parse("15:04", v); err == nil {
		return v, nil
	}
	if _, err := time.Parse("15:04:05", v); err == nil {
		return v, nil
	}
	return "", &FilterError{Field: field, Reason: "must be HH:MM or HH:MM:SS"}
}
