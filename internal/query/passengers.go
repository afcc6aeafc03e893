package query

import "strings"

// PassengerPredicates is the canonical predicate set for a passenger search.
type PassengerPredicates struct {
	FlightNo    string
	PNR         string
	LoyaltyTier string
	TicketClass string
	Email       string
	Phone       string
	Wheelchair  *bool
	MinAge      *int
	Limit       int
}

// PassengerSearchRequest is the JSON body accepted by POST /passengers/search.
type PassengerSearchRequest struct {
	FlightNo    string `json:"flight_no"`
	PNR         string `json:"pnr"`
	LoyaltyTier string `json:"loyalty_tier"`
	TicketClass string `json:"ticket_class"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Wheelchair  *bool  `json:"wheelchair_or_medical_time_required"`
	MinAge      *int   `json:"min_age"`
	Limit       *int   `json:"limit"`
}

// InterpretPassengerSearch resolves a passenger search request into a
// predicate set.
func InterpretPassengerSearch(req PassengerSearchRequest) (PassengerPredicates, error) {
	p := PassengerPredicates{
		FlightNo:    strings.ToUpper(strings.TrimSpace(req.FlightNo)),
		PNR:         strings.ToUpper(strings.TrimSpace(req.PNR)),
		LoyaltyTier: strings.ToUpper(strings.TrimSpace(req.LoyaltyTier)),
		TicketClass: strings.ToUpper(strings.TrimSpace(req.TicketClass)),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Wheelchair:  req.Wheelchair,
		Limit:       DefaultPassengerLimit,
	}

	if req.MinAge != nil {
		if *req.MinAge < 0 {
			return p, &FilterError{Field: "min_age", Reason: "must be a non-negative integer"}
		}
		p.MinAge = req.MinAge
	}
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return p, &FilterError{Field: "limit", Reason: "must be a positive integer"}
		}
		p.Limit = *req.Limit
	}

	return p, nil
}
