package query

import "strings"

// Statuses a crew member may hold while still being assignable to a
// replacement flight.
var AssignableCrewStatuses = []string{"AVAILABLE", "STANDBY_AIRPORT", "STANDBY_HOME"}

// CrewPredicates is the canonical predicate set for a crew search.
// AnyLocation matches either base_airport or current_location; Statuses, when
// set, becomes an IN constraint on current_status.
type CrewPredicates struct {
	Role            string
	Certification   string
	BaseAirport     string
	CurrentLocation string
	AnyLocation     string
	CurrentStatus   string
	Statuses        []string
	MaxDutyHours    *float64
	AvailableAfter  string
	AvailableBefore string
	Limit           int
}

// CrewSearchRequest is the JSON body accepted by POST /crew/search.
type CrewSearchRequest struct {
	Role            string   `json:"role"`
	Certifications  string   `json:"certifications"`
	BaseAirport     string   `json:"base_airport"`
	CurrentLocation string   `json:"current_location"`
	CurrentStatus   string   `json:"current_status"`
	MaxDutyHours    *float64 `json:"max_duty_hours"`
	AvailableAfter  string   `json:"available_after"`
	AvailableBefore string   `json:"available_before"`
	Limit           *int     `json:"limit"`
}

// AvailableCrewRequest is the JSON body accepted by POST /crew/available,
// the specialized replacement-crew search used during disruptions.
type AvailableCrewRequest struct {
	CertificationsRequired string   `json:"certifications_required"`
	Location               string   `json:"location"`
	Role                   string   `json:"role"`
	AvailableAfter         string   `json:"available_after"`
	MaxDutyHours           *float64 `json:"max_duty_hours"`
	Limit                  *int     `json:"limit"`
}

// AssignmentPredicates is the canonical predicate set for an assignment search.
type AssignmentPredicates struct {
	CrewID      string
	FlightNo    string
	Role        string
	Status      string
	DateAfter   string
	DateBefore  string
	Origin      string
	Destination string
	Limit       int
}

// AssignmentSearchRequest is the JSON body accepted by POST /assignments/search.
type AssignmentSearchRequest struct {
	CrewID           string `json:"crew_id"`
	FlightNo         string `json:"flight_no"`
	Role             string `json:"role"`
	Status           string `json:"status"`
	FlightDateAfter  string `json:"flight_date_after"`
	FlightDateBefore string `json:"flight_date_before"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	Limit            *int   `json:"limit"`
}

// InterpretCrewSearch resolves a crew search request into a predicate set.
func InterpretCrewSearch(req CrewSearchRequest) (CrewPredicates, error) {
	p := CrewPredicates{
		Role:            strings.ToUpper(strings.TrimSpace(req.Role)),
		Certification:   strings.ToUpper(strings.TrimSpace(req.Certifications)),
		BaseAirport:     strings.ToUpper(strings.TrimSpace(req.BaseAirport)),
		CurrentLocation: strings.ToUpper(strings.TrimSpace(req.CurrentLocation)),
		CurrentStatus:   strings.ToUpper(strings.TrimSpace(req.CurrentStatus)),
		AvailableAfter:  strings.TrimSpace(req.AvailableAfter),
		AvailableBefore: strings.TrimSpace(req.AvailableBefore),
		Limit:           DefaultCrewLimit,
	}

	if req.MaxDutyHours != nil {
		if *req.MaxDutyHours < 0 {
			return p, &FilterError{Field: "max_duty_hours", Reason: "must be non-negative"}
		}
		p.MaxDutyHours = req.MaxDutyHours
	}
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return p, &FilterError{Field: "limit", Reason: "must be a positive integer"}
		}
		p.Limit = *req.Limit
	}

	return p, nil
}

// InterpretAvailableCrew resolves a replacement-crew request. The status set
// is always pinned to the assignable statuses and the duty-hours ceiling
// defaults to 50.
func InterpretAvailableCrew(req AvailableCrewRequest) (CrewPredicates, error) {
	p := CrewPredicates{
		Role:           strings.ToUpper(strings.TrimSpace(req.Role)),
		Certification:  strings.ToUpper(strings.TrimSpace(req.CertificationsRequired)),
		AnyLocation:    strings.ToUpper(strings.TrimSpace(req.Location)),
		Statuses:       AssignableCrewStatuses,
		AvailableAfter: strings.TrimSpace(req.AvailableAfter),
		Limit:          DefaultAvailableLimit,
	}

	maxDuty := 50.0
	if req.MaxDutyHours != nil {
		if *req.MaxDutyHours < 0 {
			return p, &FilterError{Field: "max_duty_hours", Reason: "must be non-negative"}
		}
		maxDuty = *req.MaxDutyHours
	}
	p.MaxDutyHours = &maxDuty

	if req.Limit != nil {
		if *req.Limit <= 0 {
			return p, &FilterError{Field: "limit", Reason: "must be a positive integer"}
		}
		p.Limit = *req.Limit
	}

	return p, nil
}

// InterpretAssignmentSearch resolves an assignment search request.
func InterpretAssignmentSearch(req AssignmentSearchRequest) (AssignmentPredicates, error) {
	p := AssignmentPredicates{
		CrewID:      strings.ToUpper(strings.TrimSpace(req.CrewID)),
		FlightNo:    strings.ToUpper(strings.TrimSpace(req.FlightNo)),
		Role:        strings.ToUpper(strings.TrimSpace(req.Role)),
		Status:      strings.ToUpper(strings.TrimSpace(req.Status)),
		DateAfter:   strings.TrimSpace(req.FlightDateAfter),
		DateBefore:  strings.TrimSpace(req.FlightDateBefore),
		Origin:      strings.ToUpper(strings.TrimSpace(req.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(req.Destination)),
		Limit:       DefaultAssignmentLimit,
	}

	if req.Limit != nil {
		if *req.Limit <= 0 {
			return p, &FilterError{Field: "limit", Reason: "must be a positive integer"}
		}
		p.Limit = *req.Limit
	}

	return p, nil
}
