package stream

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"
)

// MessageType represents the type of WebSocket message
type MessageType string

const MessageTypeFlightUpdated MessageType = "flight_updated"

// Message represents a WebSocket message
type Message struct {
	Type      MessageType `json:"type"`
	FlightNo  string      `json:"flight_no"`
	Flight    interface{} `json:"flight,omitempty"`
	Changed   []string    `json:"changed,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// Hub manages WebSocket connections per flight
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightNo] == nil {
				h.clients[client.flightNo] = make(map[*Client]bool)
			}
			h.clients[client.flightNo][client] = true
			log.Printf("WebSocket: Client registered for flight %s (total: %d)", client.flightNo, len(h.clients[client.flightNo]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.flightNo]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					log.Printf("WebSocket: Client unregistered from flight %s (remaining: %d)", client.flightNo, len(clients))
					if len(clients) == 0 {
						delete(h.clients, client.flightNo)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("WebSocket: Failed to marshal message: %v", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.FlightNo]
			h.mu.RUnlock()

			log.Printf("WebSocket: Broadcasting %s to %d clients for flight %s", message.Type, len(clients), message.FlightNo)

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.FlightNo], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastUpdate pushes a flight state change to all clients watching the flight.
func (h *Hub) BroadcastUpdate(flightNo string, flight interface{}, changed []string) {
	h.broadcast <- &Message{
		Type:      MessageTypeFlightUpdated,
		FlightNo:  strings.ToUpper(flightNo),
		Flight:    flight,
		Changed:   changed,
		Timestamp: time.Now().UnixMilli(),
	}
}

// WatchedFlights returns the flight numbers that have at least one client.
func (h *Hub) WatchedFlights() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	flights := make([]string, 0, len(h.clients))
	for flightNo := range h.clients {
		flights = append(flights, flightNo)
	}
	return flights
}

// GetClientCount returns the number of clients watching a flight
func (h *Hub) GetClientCount(flightNo string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[strings.ToUpper(flightNo)])
}
