package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

// CrewService defines the crew-facing operations
type CrewService interface {
	Search(ctx context.Context, req query.CrewSearchRequest) ([]database.Crew, *CrewCategories, error)
	Get(ctx context.Context, crewID string) (*database.Crew, []database.CrewAssignment, error)
	ByFlight(ctx context.Context, flightNo string) (*FlightCrewRoster, error)
	Available(ctx context.Context, req query.AvailableCrewRequest) ([]database.Crew, *AvailabilityBuckets, error)
	SearchAssignments(ctx context.Context, req query.AssignmentSearchRequest) ([]database.CrewAssignment, error)
	Health(ctx context.Context) (crewCount, assignmentCount int, err error)
}

type crewServiceImpl struct {
	repo *database.Repository
	now  func() time.Time
}

// NewCrewService creates a new CrewService over the repository.
func NewCrewService(repo *database.Repository) CrewService {
	return &crewServiceImpl{repo: repo, now: time.Now}
}

func (s *crewServiceImpl) Search(ctx context.Context, req query.CrewSearchRequest) ([]database.Crew, *CrewCategories, error) {
	predicates, err := query.InterpretCrewSearch(req)
	if err != nil {
		return nil, nil, err
	}
	crew, err := s.repo.SearchCrew(ctx, predicates)
	if err != nil {
		return nil, nil, err
	}
	return crew, CategorizeCrew(crew, s.now()), nil
}

func (s *crewServiceImpl) Get(ctx context.Context, crewID string) (*database.Crew, []database.CrewAssignment, error) {
	crew, err := s.repo.GetCrewByID(ctx, crewID)
	if err != nil {
		return nil, nil, err
	}
	assignments, err := s.repo.ListAssignmentsByCrew(ctx, crewID)
	if err != nil {
		return nil, nil, err
	}
	return crew, assignments, nil
}

// CertificationCheck reports whether one assigned crew member holds the
// certification the flight's aircraft type requires.
type CertificationCheck struct {
	CrewID                   string `json:"crew_id"`
	Name                     string `json:"name"`
	Role                     string `json:"role"`
	HasRequiredCertification bool   `json:"has_required_certification"`
	Required                 string `json:"required"`
	Has                      string `json:"has"`
}

// FlightCrewRoster is the full crew picture for one flight.
type FlightCrewRoster struct {
	FlightNo            string                             `json:"flight_no"`
	FlightDetails       *database.FlightSummary            `json:"flight_details"`
	Crew                []database.CrewOnFlight            `json:"crew"`
	Count               int                                `json:"count"`
	ByRole              map[string][]database.CrewOnFlight `json:"by_role"`
	CertificationStatus []CertificationCheck               `json:"certification_status"`
}

var rosterRoles = []string{"Pilot", "Co-Pilot", "Cabin Crew"}

func (s *crewServiceImpl) ByFlight(ctx context.Context, flightNo string) (*FlightCrewRoster, error) {
	// The flight row is optional context: assignments can reference flights
	// the flights table no longer carries.
	details, err := s.repo.GetFlightSummary(ctx, flightNo)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	roster, err := s.repo.ListCrewOnFlight(ctx, flightNo)
	if err != nil {
		return nil, err
	}

	out := &FlightCrewRoster{
		FlightNo:            strings.ToUpper(flightNo),
		FlightDetails:       details,
		Crew:                roster,
		Count:               len(roster),
		ByRole:              make(map[string][]database.CrewOnFlight, len(rosterRoles)),
		CertificationStatus: []CertificationCheck{},
	}
	for _, role := range rosterRoles {
		out.ByRole[role] = []database.CrewOnFlight{}
	}

	for _, m := range roster {
		role := m.AssignmentRole
		if role == "" {
			role = m.CrewRole
		}
		if _, known := out.ByRole[role]; known {
			out.ByRole[role] = append(out.ByRole[role], m)
		}
	}

	if details != nil && details.AircraftType != "" {
		required := strings.ToUpper(details.AircraftType)
		for _, m := range roster {
			out.CertificationStatus = append(out.CertificationStatus, CertificationCheck{
				CrewID:                   m.CrewID,
				Name:                     m.Name,
				Role:                     m.AssignmentRole,
				HasRequiredCertification: strings.Contains(strings.ToUpper(m.Certifications), required),
				Required:                 details.AircraftType,
				Has:                      m.Certifications,
			})
		}
	}

	return out, nil
}

// AvailabilityBuckets groups assignable crew by how soon they can fly.
type AvailabilityBuckets struct {
	Immediate      []database.Crew `json:"immediate"`
	StandbyAirport []database.Crew `json:"standby_airport"`
	StandbyHome    []database.Crew `json:"standby_home"`
	Soon           []database.Crew `json:"soon"`
}

func (s *crewServiceImpl) Available(ctx context.Context, req query.AvailableCrewRequest) ([]database.Crew, *AvailabilityBuckets, error) {
	predicates, err := query.InterpretAvailableCrew(req)
	if err != nil {
		return nil, nil, err
	}
	crew, err := s.repo.SearchCrew(ctx, predicates)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	buckets := &AvailabilityBuckets{
		Immediate:      []database.Crew{},
		StandbyAirport: []database.Crew{},
		StandbyHome:    []database.Crew{},
		Soon:           []database.Crew{},
	}
	for _, c := range crew {
		switch {
		case c.CurrentStatus == "AVAILABLE" || !c.NextLegalAvailability.After(now):
			buckets.Immediate = append(buckets.Immediate, c)
		case c.CurrentStatus == "STANDBY_AIRPORT":
			buckets.StandbyAirport = append(buckets.StandbyAirport, c)
		case c.CurrentStatus == "STANDBY_HOME":
			buckets.StandbyHome = append(buckets.StandbyHome, c)
		default:
			buckets.Soon = append(buckets.Soon, c)
		}
	}

	return crew, buckets, nil
}

func (s *crewServiceImpl) SearchAssignments(ctx context.Context, req query.AssignmentSearchRequest) ([]database.CrewAssignment, error) {
	predicates, err := query.InterpretAssignmentSearch(req)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchAssignments(ctx, predicates)
}

func (s *crewServiceImpl) Health(ctx context.Context) (int, int, error) {
	crewCount, err := s.repo.CountRows(ctx, "crew")
	if err != nil {
		return 0, 0, err
	}
	assignmentCount, err := s.repo.CountRows(ctx, "crew_assignments")
	if err != nil {
		return 0, 0, err
	}
	return crewCount, assignmentCount, nil
}

// CrewCategories partitions a crew set for easier analysis by the agent.
type CrewCategories struct {
	ByRole        map[string][]database.Crew `json:"by_role"`
	ByStatus      map[string][]database.Crew `json:"by_status"`
	LowDutyHours  []database.Crew            `json:"low_duty_hours"`
	HighDutyHours []database.Crew            `json:"high_duty_hours"`
	AvailableNow  []database.Crew            `json:"available_now"`
}

var crewStatuses = []string{"AVAILABLE", "STANDBY_AIRPORT", "STANDBY_HOME", "RESTING", "UNAVAILABLE"}

// CategorizeCrew partitions crew members by role, status, recent duty hours
// (low < 30, high > 45) and immediate legal availability.
func CategorizeCrew(crew []database.Crew, now time.Time) *CrewCategories {
	c := &CrewCategories{
		ByRole:        make(map[string][]database.Crew, len(rosterRoles)),
		ByStatus:      make(map[string][]database.Crew, len(crewStatuses)),
		LowDutyHours:  []database.Crew{},
		HighDutyHours: []database.Crew{},
		AvailableNow:  []database.Crew{},
	}
	for _, role := range rosterRoles {
		c.ByRole[role] = []database.Crew{}
	}
	for _, status := range crewStatuses {
		c.ByStatus[status] = []database.Crew{}
	}

	for _, m := range crew {
		if _, known := c.ByRole[m.Role]; known {
			c.ByRole[m.Role] = append(c.ByRole[m.Role], m)
		}
		if _, known := c.ByStatus[m.CurrentStatus]; known {
			c.ByStatus[m.CurrentStatus] = append(c.ByStatus[m.CurrentStatus], m)
		}
		if m.DutyHoursLast7d < 30 {
			c.LowDutyHours = append(c.LowDutyHours, m)
		} else if m.DutyHoursLast7d > 45 {
			c.HighDutyHours = append(c.HighDutyHours, m)
		}
		if !m.NextLegalAvailability.IsZero() && !m.NextLegalAvailability.After(now) {
			c.AvailableNow = append(c.AvailableNow, m)
		}
	}

	return c
}
