package database

import "time"

// FlightStatus is the closed status enumeration used by the flights table.
type FlightStatus string

const (
	FlightStatusOnTime    FlightStatus = "ON_TIME"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
)

// Flight mirrors one row of the flights table. JSON field names match the
// column names so rows pass through to the agent platform unchanged.
type Flight struct {
	FlightNo              string    `json:"flight_no"`
	Origin                string    `json:"origin"`
	Destination           string    `json:"destination"`
	DepartureTime         time.Time `json:"departure_time"`
	ArrivalTime           time.Time `json:"arrival_time"`
	Status                string    `json:"status"`
	AvailableSeats        int       `json:"available_seats"`
	Capacity              int       `json:"capacity"`
	AircraftType          string    `json:"aircraft_type"`
	AircraftID            string    `json:"aircraft_id"`
	Terminal              string    `json:"terminal"`
	Gate                  string    `json:"gate"`
	IsCodeshare           bool      `json:"is_codeshare"`
	MealServiceAvailable  bool      `json:"meal_service_available"`
	FlightDurationMinutes int       `json:"flight_duration_minutes"`
	EconomyAvailability   int       `json:"booking_class_availability_economy"`
	PremiumAvailability   int       `json:"booking_class_availability_premium"`
	BusinessAvailability  int       `json:"booking_class_availability_business"`
}

// Route is one distinct origin/destination pair with its flight count.
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	FlightCount int    `json:"flight_count"`
}

// Passenger mirrors one row of the passengers table.
type Passenger struct {
	PassengerID        string   `json:"passenger_id"`
	FlightNo           string   `json:"flight_no"`
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	PNR                string   `json:"pnr"`
	LoyaltyTier        string   `json:"loyalty_tier"`
	TicketClass        string   `json:"ticket_class"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	SpecialNeeds       []string `json:"special_needs"`
	WheelchairRequired bool     `json:"wheelchair_or_medical_time_required"`
	PriorityScore      float64  `json:"passenger_priority_score"`
}

// Crew mirrors one row of the crew table.
type Crew struct {
	CrewID                string    `json:"crew_id"`
	Name                  string    `json:"name"`
	Role                  string    `json:"role"`
	Certifications        string    `json:"certifications"`
	BaseAirport           string    `json:"base_airport"`
	CurrentLocation       string    `json:"current_location"`
	CurrentStatus         string    `json:"current_status"`
	DutyHoursLast7d       float64   `json:"duty_hours_last_7d"`
	MaxDutyLimitHours     float64   `json:"max_duty_limit_hours"`
	NextLegalAvailability time.Time `json:"next_legal_availability"`
}

// CrewAssignment mirrors one row of the crew_assignments table.
type CrewAssignment struct {
	AssignmentID string    `json:"assignment_id"`
	CrewID       string    `json:"crew_id"`
	FlightNo     string    `json:"flight_no"`
	Role         string    `json:"role"`
	FlightDate   time.Time `json:"flight_date"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Status       string    `json:"status"`
}

// CrewOnFlight is the joined view of an assignment and its crew member,
// returned by the crew-by-flight lookup.
type CrewOnFlight struct {
	AssignmentID          string    `json:"assignment_id"`
	CrewID                string    `json:"crew_id"`
	FlightNo              string    `json:"flight_no"`
	AssignmentRole        string    `json:"assignment_role"`
	FlightDate            time.Time `json:"flight_date"`
	Origin                string    `json:"origin"`
	Destination           string    `json:"destination"`
	AssignmentStatus      string    `json:"assignment_status"`
	Name                  string    `json:"name"`
	CrewRole              string    `json:"crew_role"`
	Certifications        string    `json:"certifications"`
	BaseAirport           string    `json:"base_airport"`
	CurrentLocation       string    `json:"current_location"`
	CurrentStatus         string    `json:"current_status"`
	DutyHoursLast7d       float64   `json:"duty_hours_last_7d"`
	MaxDutyLimitHours     float64   `json:"max_duty_limit_hours"`
	NextLegalAvailability time.Time `json:"next_legal_availability"`
}

// FlightSummary is the subset of flight columns the crew service needs when
// describing a flight alongside its crew.
type FlightSummary struct {
	FlightNo      string    `json:"flight_no"`
	AircraftType  string    `json:"aircraft_type"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Status        string    `json:"status"`
}
