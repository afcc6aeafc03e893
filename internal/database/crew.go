package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

const crewColumns = `crew_id, name, role, certifications, base_airport,
	       current_location, current_status, duty_hours_last_7d,
	       max_duty_limit_hours, next_legal_availability`

const assignmentColumns = `assignment_id, crew_id, flight_no, role, flight_date,
	       origin, destination, status`

func scanCrew(row pgx.Row) (Crew, error) {
	var c Crew
	err := row.Scan(
		&c.CrewID, &c.Name, &c.Role, &c.Certifications, &c.BaseAirport,
		&c.CurrentLocation, &c.CurrentStatus, &c.DutyHoursLast7d,
		&c.MaxDutyLimitHours, &c.NextLegalAvailability,
	)
	return c, err
}

// GetCrewByID returns one crew member. Lookup is case-insensitive.
func (r *Repository) GetCrewByID(ctx context.Context, crewID string) (*Crew, error) {
	q := fmt.Sprintf(`SELECT %s FROM crew WHERE UPPER(crew_id) = $1`, crewColumns)

	c, err := scanCrew(r.pool.QueryRow(ctx, q, strings.ToUpper(crewID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}
	return &c, nil
}

// SearchCrew returns crew members matching the predicate set, ordered by
// soonest legal availability then lowest recent duty hours.
func (r *Repository) SearchCrew(ctx context.Context, p query.CrewPredicates) ([]Crew, error) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if len(p.Statuses) > 0 {
		args = append(args, p.Statuses)
		conds = append(conds, fmt.Sprintf("current_status = ANY($%d)", len(args)))
	}
	if p.Role != "" {
		add("UPPER(role) = $%d", p.Role)
	}
	if p.Certification != "" {
		add("UPPER(certifications) LIKE $%d", "%"+p.Certification+"%")
	}
	if p.BaseAirport != "" {
		add("UPPER(base_airport) = $%d", p.BaseAirport)
	}
	if p.CurrentLocation != "" {
		add("UPPER(current_location) = $%d", p.CurrentLocation)
	}
	if p.AnyLocation != "" {
		args = append(args, p.AnyLocation)
		conds = append(conds, fmt.Sprintf("(UPPER(base_airport) = $%d OR UPPER(current_location) = $%d)", len(args), len(args)))
	}
	if p.CurrentStatus != "" {
		add("UPPER(current_status) = $%d", p.CurrentStatus)
	}
	if p.MaxDutyHours != nil {
		add("duty_hours_last_7d < $%d", *p.MaxDutyHours)
	}
	if p.AvailableAfter != "" {
		add("next_legal_availability <= $%d", p.AvailableAfter)
	}
	if p.AvailableBefore != "" {
		add("next_legal_availability >= $%d", p.AvailableBefore)
	}

	q := fmt.Sprintf("SELECT %s FROM crew", crewColumns)
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY next_legal_availability, duty_hours_last_7d"
	args = append(args, p.Limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query crew: %w", err)
	}
	defer rows.Close()

	var crew []Crew
	for rows.Next() {
		c, err := scanCrew(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		crew = append(crew, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read crew: %w", err)
	}

	return crew, nil
}

// ListAssignmentsByCrew returns all assignments for one crew member, most
// recent flight date first.
func (r *Repository) ListAssignmentsByCrew(ctx context.Context, crewID string) ([]CrewAssignment, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM crew_assignments
		WHERE UPPER(crew_id) = $1
		ORDER BY flight_date DESC
	`, assignmentColumns)

	return r.queryAssignments(ctx, q, strings.ToUpper(crewID))
}

// SearchAssignments returns assignments matching the predicate set, most
// recent flight date first.
func (r *Repository) SearchAssignments(ctx context.Context, p query.AssignmentPredicates) ([]CrewAssignment, error) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if p.CrewID != "" {
		add("UPPER(crew_id) = $%d", p.CrewID)
	}
	if p.FlightNo != "" {
		add("UPPER(flight_no) = $%d", p.FlightNo)
	}
	if p.Role != "" {
		add("UPPER(role) = $%d", p.Role)
	}
	if p.Status != "" {
		add("UPPER(status) = $%d", p.Status)
	}
	if p.DateAfter != "" {
		add("flight_date >= $%d", p.DateAfter)
	}
	if p.DateBefore != "" {
		add("flight_date <= $%d", p.DateBefore)
	}
	if p.Origin != "" {
		add("UPPER(origin) = $%d", p.Origin)
	}
	if p.Destination != "" {
		add("UPPER(destination) = $%d", p.Destination)
	}

	q := fmt.Sprintf("SELECT %s FROM crew_assignments", assignmentColumns)
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY flight_date DESC"
	args = append(args, p.Limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))

	return r.queryAssignments(ctx, q, args...)
}

func (r *Repository) queryAssignments(ctx context.Context, q string, args ...any) ([]CrewAssignment, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []CrewAssignment
	for rows.Next() {
		var a CrewAssignment
		err := rows.Scan(
			&a.AssignmentID, &a.CrewID, &a.FlightNo, &a.Role, &a.FlightDate,
			&a.Origin, &a.Destination, &a.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}

	return assignments, nil
}

// ListCrewOnFlight returns the crew roster for a flight, joining assignments
// with the crew table, ordered by assignment role then name.
func (r *Repository) ListCrewOnFlight(ctx context.Context, flightNo string) ([]CrewOnFlight, error) {
	q := `
		SELECT ca.assignment_id, ca.crew_id, ca.flight_no, ca.role, ca.flight_date,
		       ca.origin, ca.destination, ca.status,
		       c.name, c.role, c.certifications, c.base_airport,
		       c.current_location, c.current_status, c.duty_hours_last_7d,
		       c.max_duty_limit_hours, c.next_legal_availability
		FROM crew_assignments ca
		JOIN crew c ON ca.crew_id = c.crew_id
		WHERE UPPER(ca.flight_no) = $1
		ORDER BY ca.role, c.name
	`

	rows, err := r.pool.Query(ctx, q, strings.ToUpper(flightNo))
	if err != nil {
		return nil, fmt.Errorf("failed to query flight crew: %w", err)
	}
	defer rows.Close()

	var roster []CrewOnFlight
	for rows.Next() {
		var m CrewOnFlight
		err := rows.Scan(
			&m.AssignmentID, &m.CrewID, &m.FlightNo, &m.AssignmentRole, &m.FlightDate,
			&m.Origin, &m.Destination, &m.AssignmentStatus,
			&m.Name, &m.CrewRole, &m.Certifications, &m.BaseAirport,
			&m.CurrentLocation, &m.CurrentStatus, &m.DutyHoursLast7d,
			&m.MaxDutyLimitHours, &m.NextLegalAvailability,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight crew: %w", err)
		}
		roster = append(roster, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flight crew: %w", err)
	}

	return roster, nil
}

// GetFlightSummary returns the flight columns the crew roster response
// embeds. Missing flights yield ErrNotFound.
func (r *Repository) GetFlightSummary(ctx context.Context, flightNo string) (*FlightSummary, error) {
	q := `
		SELECT flight_no, aircraft_type, origin, destination,
		       departure_time, arrival_time, status
		FROM flights
		WHERE UPPER(flight_no) = $1
		LIMIT 1
	`

	var s FlightSummary
	err := r.pool.QueryRow(ctx, q, strings.ToUpper(flightNo)).Scan(
		&s.FlightNo, &s.AircraftType, &s.Origin, &s.Destination,
		&s.DepartureTime, &s.ArrivalTime, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight summary: %w", err)
	}
	return &s, nil
}
