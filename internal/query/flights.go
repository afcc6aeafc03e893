package query

import "strings"

// FlightSearchRequest is the JSON body accepted by POST /search. All keys
// are optional; an empty body is a legal request. Free text may be supplied
// under "query" instead of (or alongside) structured keys.
type FlightSearchRequest struct {
	Query           string   `json:"query"`
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	Status          string   `json:"status"`
	MinSeats        *int     `json:"min_seats"`
	FlightNo        string   `json:"flight_no"`
	ExcludeStatus   []string `json:"exclude_status"`
	DepartureAfter  string   `json:"departure_after"`
	DepartureBefore string   `json:"departure_before"`
	ArrivalAfter    string   `json:"arrival_after"`
	ArrivalBefore   string   `json:"arrival_before"`
	Limit           *int     `json:"limit"`
}

// InterpretFlightSearch resolves a search request into a predicate set.
// Structured keys win over free-text extraction; the free-text interpreter
// only fills predicates the body left unset. The configured default filter
// applies last, and only to keys absent from both.
func InterpretFlightSearch(req FlightSearchRequest, defaults Defaults) (FlightPredicates, error) {
	var p FlightPredicates
	var err error

	if req.Origin != "" {
		if p.Origin, err = normalizeAirportCode("origin", req.Origin); err != nil {
			return p, err
		}
	}
	if req.Destination != "" {
		if p.Destination, err = normalizeAirportCode("destination", req.Destination); err != nil {
			return p, err
		}
	}
	// Status is matched exactly against the closed enumeration; an unknown
	// value is not an error, it simply matches no rows.
	if req.Status != "" {
		p.Status = strings.ToUpper(strings.TrimSpace(req.Status))
	}
	if req.MinSeats != nil {
		if *req.MinSeats < 0 {
			return p, &FilterError{Field: "min_seats", Reason: "must be a non-negative integer"}
		}
		p.MinSeats = req.MinSeats
	}
	if req.FlightNo != "" {
		p.FlightNo = strings.ToUpper(strings.TrimSpace(req.FlightNo))
	}
	for _, s := range req.ExcludeStatus {
		p.ExcludeStatus = append(p.ExcludeStatus, strings.ToUpper(strings.TrimSpace(s)))
	}
	if req.DepartureAfter != "" {
		if p.DepartureAfter, err = validateClockTime("departure_after", req.DepartureAfter); err != nil {
			return p, err
		}
	}
	if req.DepartureBefore != "" {
		if p.DepartureBefore, err = validateClockTime("departure_before", req.DepartureBefore); err != nil {
			return p, err
		}
	}
	if req.ArrivalAfter != "" {
		if p.ArrivalAfter, err = validateClockTime("arrival_after", req.ArrivalAfter); err != nil {
			return p, err
		}
	}
	if req.ArrivalBefore != "" {
		if p.ArrivalBefore, err = validateClockTime("arrival_before", req.ArrivalBefore); err != nil {
			return p, err
		}
	}
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return p, &FilterError{Field: "limit", Reason: "must be a positive integer"}
		}
		p.Limit = *req.Limit
	}

	if req.Query != "" {
		merge(&p, ExtractFlightPredicates(req.Query))
	}

	if p.MinSeats == nil {
		p.MinSeats = defaults.MinSeats
	}
	// No limit anywhere means the whole result set.
	if p.Limit == 0 {
		p.Limit = defaults.Limit
	}

	return p, nil
}

// merge fills predicates the structured body left unset from the free-text
// extraction. Structured values always win.
func merge(p *FlightPredicates, extracted FlightPredicates) {
	if p.Origin == "" {
		p.Origin = extracted.Origin
	}
	if p.Destination == "" {
		p.Destination = extracted.Destination
	}
	// A structured status pins the status entirely: text-derived status
	// keywords, including negations, are ignored so the two sources cannot
	// produce contradictory predicates.
	if p.Status == "" {
		p.Status = extracted.Status
		if len(p.ExcludeStatus) == 0 {
			p.ExcludeStatus = extracted.ExcludeStatus
		}
	}
	if p.MinSeats == nil {
		p.MinSeats = extracted.MinSeats
	}
	if p.FlightNo == "" {
		p.FlightNo = extracted.FlightNo
	}
	if p.Limit == 0 {
		p.Limit = extracted.Limit
	}
}
