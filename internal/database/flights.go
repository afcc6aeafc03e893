package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

const flightColumns = `flight_no, origin, destination, departure_time, arrival_time,
	       status, available_seats, capacity, aircraft_type, aircraft_id,
	       terminal, gate, is_codeshare, meal_service_available,
	       flight_duration_minutes, booking_class_availability_economy,
	       booking_class_availability_premium, booking_class_availability_business`

func scanFlight(row pgx.Row) (Flight, error) {
	var f Flight
	err := row.Scan(
		&f.FlightNo, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime,
		&f.Status, &f.AvailableSeats, &f.Capacity, &f.AircraftType, &f.AircraftID,
		&f.Terminal, &f.Gate, &f.IsCodeshare, &f.MealServiceAvailable,
		&f.FlightDurationMinutes, &f.EconomyAvailability,
		&f.PremiumAvailability, &f.BusinessAvailability,
	)
	return f, err
}

// GetFlightByNumber returns the flight with the given number. Lookup is
// case-insensitive.
func (r *Repository) GetFlightByNumber(ctx context.Context, flightNo string) (*Flight, error) {
	q := fmt.Sprintf(`SELECT %s FROM flights WHERE UPPER(flight_no) = $1`, flightColumns)

	f, err := scanFlight(r.pool.QueryRow(ctx, q, strings.ToUpper(flightNo)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return &f, nil
}

// SearchFlights returns all flights matching the predicate set, ordered by
// departure time.
func (r *Repository) SearchFlights(ctx context.Context, p query.FlightPredicates) ([]Flight, error) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if p.Origin != "" {
		add("origin = $%d", p.Origin)
	}
	if p.Destination != "" {
		add("destination = $%d", p.Destination)
	}
	if p.Status != "" {
		add("status = $%d", p.Status)
	}
	if p.FlightNo != "" {
		add("flight_no = $%d", p.FlightNo)
	}
	if p.MinSeats != nil {
		add("available_seats >= $%d", *p.MinSeats)
	}
	for _, s := range p.ExcludeStatus {
		add("status != $%d", s)
	}
	if p.DepartureAfter != "" {
		add("CAST(departure_time AS TIME) >= $%d", p.DepartureAfter)
	}
	if p.DepartureBefore != "" {
		add("CAST(departure_time AS TIME) <= $%d", p.DepartureBefore)
	}
	if p.ArrivalAfter != "" {
		add("CAST(arrival_time AS TIME) >= $%d", p.ArrivalAfter)
	}
	if p.ArrivalBefore != "" {
		add("CAST(arrival_time AS TIME) <= $%d", p.ArrivalBefore)
	}

	q := fmt.Sprintf("SELECT %s FROM flights", flightColumns)
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY departure_time"
	if p.Limit > 0 {
		args = append(args, p.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []Flight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flights: %w", err)
	}

	return flights, nil
}

// ListRoutes returns every distinct origin/destination pair with its flight
// count.
func (r *Repository) ListRoutes(ctx context.Context) ([]Route, error) {
	q := `
		SELECT DISTINCT origin, destination, COUNT(*) AS flight_count
		FROM flights
		GROUP BY origin, destination
		ORDER BY origin, destination
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var rt Route
		if err := rows.Scan(&rt.Origin, &rt.Destination, &rt.FlightCount); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read routes: %w", err)
	}

	return routes, nil
}
