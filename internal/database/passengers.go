package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

const passengerColumns = `passenger_id, flight_no, name, age, pnr, loyalty_tier,
	       ticket_class, email, phone, special_needs,
	       wheelchair_or_medical_time_required, passenger_priority_score`

func scanPassenger(row pgx.Row) (Passenger, error) {
	var p Passenger
	var needs *string
	err := row.Scan(
		&p.PassengerID, &p.FlightNo, &p.Name, &p.Age, &p.PNR, &p.LoyaltyTier,
		&p.TicketClass, &p.Email, &p.Phone, &needs,
		&p.WheelchairRequired, &p.PriorityScore,
	)
	if err != nil {
		return p, err
	}
	p.SpecialNeeds = parseSpecialNeeds(needs)
	return p, nil
}

// parseSpecialNeeds decodes the special_needs column, stored as a JSON array
// in text form. Unparseable values degrade to no needs.
func parseSpecialNeeds(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var needs []string
	if err := json.Unmarshal([]byte(*raw), &needs); err != nil {
		return nil
	}
	return needs
}

// ListPassengersByFlight returns all passengers booked on a flight, highest
// priority score first. Flight number matching is case-insensitive.
func (r *Repository) ListPassengersByFlight(ctx context.Context, flightNo string) ([]Passenger, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM passengers
		WHERE UPPER(flight_no) = $1
		ORDER BY passenger_priority_score DESC
	`, passengerColumns)

	return r.queryPassengers(ctx, q, strings.ToUpper(flightNo))
}

// ListPassengersByPNR returns every passenger sharing a booking reference.
func (r *Repository) ListPassengersByPNR(ctx context.Context, pnr string) ([]Passenger, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM passengers
		WHERE UPPER(pnr) = $1
		ORDER BY passenger_priority_score DESC
	`, passengerColumns)

	return r.queryPassengers(ctx, q, strings.ToUpper(pnr))
}

// SearchPassengers returns all passengers matching the predicate set,
// highest priority score first.
func (r *Repository) SearchPassengers(ctx context.Context, p query.PassengerPredicates) ([]Passenger, error) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if p.FlightNo != "" {
		add("UPPER(flight_no) = $%d", p.FlightNo)
	}
	if p.PNR != "" {
		add("UPPER(pnr) = $%d", p.PNR)
	}
	if p.LoyaltyTier != "" {
		add("UPPER(loyalty_tier) = $%d", p.LoyaltyTier)
	}
	if p.TicketClass != "" {
		add("UPPER(ticket_class) = $%d", p.TicketClass)
	}
	if p.Email != "" {
		add("LOWER(email) = $%d", p.Email)
	}
	if p.Phone != "" {
		add("phone = $%d", p.Phone)
	}
	if p.Wheelchair != nil {
		add("wheelchair_or_medical_time_required = $%d", *p.Wheelchair)
	}
	if p.MinAge != nil {
		add("age >= $%d", *p.MinAge)
	}

	q := fmt.Sprintf("SELECT %s FROM passengers", passengerColumns)
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY passenger_priority_score DESC"
	args = append(args, p.Limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))

	return r.queryPassengers(ctx, q, args...)
}

func (r *Repository) queryPassengers(ctx context.Context, q string, args ...any) ([]Passenger, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query passengers: %w", err)
	}
	defer rows.Close()

	var passengers []Passenger
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan passenger: %w", err)
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read passengers: %w", err)
	}

	return passengers, nil
}
