package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
)

type stubSource struct {
	flights map[string]*database.Flight
}

func (s *stubSource) GetFlightByNumber(ctx context.Context, flightNo string) (*database.Flight, error) {
	f, ok := s.flights[flightNo]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func watchFlight(h *Hub, flightNo string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[flightNo] == nil {
		h.clients[flightNo] = make(map[*Client]bool)
	}
	h.clients[flightNo][&Client{}] = true
}

func TestWatcher_BroadcastsOnChange(t *testing.T) {
	hub := NewHub()
	source := &stubSource{flights: map[string]*database.Flight{
		"AI202": {FlightNo: "AI202", Status: "ON_TIME", AvailableSeats: 40, Gate: "12"},
	}}
	watcher := NewWatcher(hub, source, time.Minute)
	watchFlight(hub, "AI202")

	ctx := context.Background()

	// First poll only establishes the baseline.
	watcher.poll(ctx)
	assert.Empty(t, hub.broadcast)

	// Unchanged state stays quiet.
	watcher.poll(ctx)
	assert.Empty(t, hub.broadcast)

	source.flights["AI202"].Status = "DELAYED"
	source.flights["AI202"].Gate = "14"
	watcher.poll(ctx)

	require.Len(t, hub.broadcast, 1)
	msg := <-hub.broadcast
	assert.Equal(t, MessageTypeFlightUpdated, msg.Type)
	assert.Equal(t, "AI202", msg.FlightNo)
	assert.ElementsMatch(t, []string{"status", "gate"}, msg.Changed)
}

func TestWatcher_IgnoresUnwatchedFlights(t *testing.T) {
	hub := NewHub()
	source := &stubSource{flights: map[string]*database.Flight{
		"AI202": {FlightNo: "AI202", Status: "ON_TIME"},
	}}
	watcher := NewWatcher(hub, source, time.Minute)

	watcher.poll(context.Background())
	assert.Empty(t, hub.broadcast)
	assert.Empty(t, watcher.known)
}

func TestWatcher_DropsStaleBaseline(t *testing.T) {
	hub := NewHub()
	source := &stubSource{flights: map[string]*database.Flight{
		"AI202": {FlightNo: "AI202", Status: "ON_TIME"},
	}}
	watcher := NewWatcher(hub, source, time.Minute)
	watchFlight(hub, "AI202")

	ctx := context.Background()
	watcher.poll(ctx)
	require.Contains(t, watcher.known, "AI202")

	// Last client disconnects; the cached baseline goes with it.
	hub.mu.Lock()
	delete(hub.clients, "AI202")
	hub.mu.Unlock()

	watcher.poll(ctx)
	assert.NotContains(t, watcher.known, "AI202")
}

func TestWatcher_MissingFlightIsNotFatal(t *testing.T) {
	hub := NewHub()
	source := &stubSource{flights: map[string]*database.Flight{}}
	watcher := NewWatcher(hub, source, time.Minute)
	watchFlight(hub, "ZZ999")

	watcher.poll(context.Background())
	assert.Empty(t, hub.broadcast)
}
