package query

import (
	"regexp"
	"strconv"
	"strings"
)

// The free-text interpreter is a flat set of keyword tables and patterns,
// not a grammar. Extraction is best effort: unrecognized tokens are dropped
// and conflicting signals resolve to whichever match occurs first in scan
// order. It never fails.

// cityCodes maps city names to IATA airport codes. Scanned in table order
// when rewriting the query text.
var cityCodes = []struct {
	City string
	Code string
}{
	{"mumbai", "BOM"}, {"delhi", "DEL"}, {"bangalore", "BLR"}, {"bengaluru", "BLR"},
	{"chennai", "MAA"}, {"kolkata", "CCU"}, {"calcutta", "CCU"}, {"hyderabad", "HYD"},
	{"pune", "PNQ"}, {"ahmedabad", "AMD"}, {"kochi", "COK"}, {"cochin", "COK"},
	{"goa", "GOI"}, {"jaipur", "JAI"}, {"lucknow", "LKO"}, {"chandigarh", "IXC"},
	{"dubai", "DXB"}, {"singapore", "SIN"}, {"london", "LHR"}, {"new york", "JFK"},
	{"paris", "CDG"}, {"bangkok", "BKK"}, {"hong kong", "HKG"}, {"tokyo", "NRT"},
}

var cityPatterns = func() []struct {
	Re   *regexp.Regexp
	Code string
} {
	out := make([]struct {
		Re   *regexp.Regexp
		Code string
	}, len(cityCodes))
	for i, c := range cityCodes {
		out[i].Re = regexp.MustCompile(`(?i)\b` + c.City + `\b`)
		out[i].Code = c.Code
	}
	return out
}()

var (
	limitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:show|give|find|list)\s+(?:any\s+)?(\d+)\s+flights?`),
		regexp.MustCompile(`(?i)(?:first|top)\s+(\d+)\s+flights?`),
		regexp.MustCompile(`(?i)(\d+)\s+flights?`),
		regexp.MustCompile(`(?i)any\s+(\d+)`),
	}

	flightNoRe = regexp.MustCompile(`\b([A-Za-z]{2,3}\d{3,5})\b`)

	minSeatsRe = regexp.MustCompile(`(?i)\b(?:at\s+least|minimum(?:\s+of)?)\s+(\d+)\s+seats?\b`)
	seatsRe    = regexp.MustCompile(`(?i)\b(available|seats|availability|with seats|has seats)\b`)

	originAsRe = regexp.MustCompile(`(?i)\borigin\s+(?:(?:as|is|=)\s+)?([A-Za-z]{3})\b`)
	destAsRe   = regexp.MustCompile(`(?i)\bdestination\s+(?:(?:as|is|=)\s+)?([A-Za-z]{3})\b`)
	routeRe    = regexp.MustCompile(`(?i)\bfrom\s+(?:\w+\s+)*?([A-Za-z]{3})\s+to\s+([A-Za-z]{3})\b`)
	fromRe     = regexp.MustCompile(`(?i)\bfrom\s+(?:\w+\s+)*?([A-Za-z]{3})\b`)
	toRe       = regexp.MustCompile(`(?i)\bto\s+([A-Za-z]{3})\b`)
)

var negatedDelayedPhrases = []string{
	"not delayed", "no delayed", "not be delayed", "which is not delayed",
	"that are not delayed", "that is not delayed", "without delay",
}

var negatedCancelledPhrases = []string{
	"not cancelled", "not canceled", "no cancelled", "no canceled",
	"not be cancelled", "not be canceled",
}

// ExtractFlightPredicates interprets a free-text flight query.
func ExtractFlightPredicates(text string) FlightPredicates {
	var p FlightPredicates
	lower := strings.ToLower(text)

	for _, re := range limitPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				p.Limit = n
			}
			break
		}
	}

	if m := minSeatsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
			p.MinSeats = &n
		}
	}

	if m := flightNoRe.FindStringSubmatch(text); m != nil {
		p.FlightNo = strings.ToUpper(m[1])
	}

	// Rewrite known city names to their airport codes, then pull route
	// information out of the rewritten text.
	processed := text
	for _, cp := range cityPatterns {
		processed = cp.Re.ReplaceAllString(processed, cp.Code)
	}

	if m := originAsRe.FindStringSubmatch(processed); m != nil {
		p.Origin = strings.ToUpper(m[1])
	}
	if m := destAsRe.FindStringSubmatch(processed); m != nil {
		p.Destination = strings.ToUpper(m[1])
	}

	if m := routeRe.FindStringSubmatch(processed); m != nil && p.Origin == "" && p.Destination == "" {
		p.Origin = strings.ToUpper(m[1])
		p.Destination = strings.ToUpper(m[2])
	} else {
		if p.Origin == "" {
			if m := fromRe.FindStringSubmatch(processed); m != nil {
				p.Origin = strings.ToUpper(m[1])
			}
		}
		if p.Destination == "" {
			if m := toRe.FindStringSubmatch(processed); m != nil {
				p.Destination = strings.ToUpper(m[1])
			}
		}
	}

	if p.MinSeats == nil && seatsRe.MatchString(text) {
		one := 1
		p.MinSeats = &one
	}

	extractStatus(lower, &p)

	return p
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}

// extractStatus recognizes status keywords, including negations. Both
// negations together pin the status to ON_TIME; a single negation becomes a
// status exclusion.
func extractStatus(lower string, p *FlightPredicates) {
	negDelayed := containsAny(lower, negatedDelayedPhrases)
	negCancelled := containsAny(lower, negatedCancelledPhrases)

	switch {
	case negDelayed && negCancelled:
		p.Status = "ON_TIME"
	case negDelayed:
		p.ExcludeStatus = append(p.ExcludeStatus, "DELAYED")
	case negCancelled:
		p.ExcludeStatus = append(p.ExcludeStatus, "CANCELLED")
	case strings.Contains(lower, "delayed"):
		p.Status = "DELAYED"
	case strings.Contains(lower, "cancelled") || strings.Contains(lower, "canceled"):
		p.Status = "CANCELLED"
	case strings.Contains(lower, "on time") || strings.Contains(lower, "on-time") || strings.Contains(lower, "ontime"):
		p.Status = "ON_TIME"
	}
}
