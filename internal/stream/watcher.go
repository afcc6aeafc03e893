package stream

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
)

// FlightSource is the subset of the repository the watcher needs.
type FlightSource interface {
	GetFlightByNumber(ctx context.Context, flightNo string) (*database.Flight, error)
}

// FlightState holds the fields whose changes are pushed to clients.
type FlightState struct {
	Status         string
	AvailableSeats int
	Gate           string
	Terminal       string
	DepartureTime  time.Time
}

// Watcher polls watched flights and broadcasts state changes through the hub.
type Watcher struct {
	hub      *Hub
	source   FlightSource
	interval time.Duration
	known    map[string]FlightState
}

// NewWatcher creates a Watcher polling at the given interval.
func NewWatcher(hub *Hub, source FlightSource, interval time.Duration) *Watcher {
	return &Watcher{
		hub:      hub,
		source:   source,
		interval: interval,
		known:    make(map[string]FlightState),
	}
}

// Run polls until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	watched := w.hub.WatchedFlights()

	// Drop cached state for flights nobody watches anymore so a
	// re-subscribed client gets a fresh change baseline.
	active := make(map[string]bool, len(watched))
	for _, flightNo := range watched {
		active[flightNo] = true
	}
	for flightNo := range w.known {
		if !active[flightNo] {
			delete(w.known, flightNo)
		}
	}

	for _, flightNo := range watched {
		flight, err := w.source.GetFlightByNumber(ctx, flightNo)
		if err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				log.Printf("Watcher: Failed to poll flight %s: %v", flightNo, err)
			}
			continue
		}

		state := FlightState{
			Status:         flight.Status,
			AvailableSeats: flight.AvailableSeats,
			Gate:           flight.Gate,
			Terminal:       flight.Terminal,
			DepartureTime:  flight.DepartureTime,
		}

		prev, seen := w.known[flightNo]
		w.known[flightNo] = state
		if !seen {
			continue
		}
		changed := changedFields(prev, state)
		if len(changed) == 0 {
			continue
		}

		w.hub.BroadcastUpdate(flightNo, flight, changed)
	}
}

func changedFields(prev, next FlightState) []string {
	var changed []string
	if prev.Status != next.Status {
		changed = append(changed, "status")
	}
	if prev.AvailableSeats != next.AvailableSeats {
		changed = append(changed, "available_seats")
	}
	if prev.Gate != next.Gate {
		changed = append(changed, "gate")
	}
	if prev.Terminal != next.Terminal {
		changed = append(changed, "terminal")
	}
	if !prev.DepartureTime.Equal(next.DepartureTime) {
		changed = append(changed, "departure_time")
	}
	return changed
}
