package events

import "time"

// Event is one lifecycle fact appended to an order's stream.
type Event struct {
	Type     string      `json:"type"`
	StreamID string      `json:"stream_id"`
	Data     interface{} `json:"data"`
	At       time.Time   `json:"at"`
	Version  int         `json:"version"`
}

// Handler consumes published events.
type Handler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// Store is an append-only event log with per-stream versioning and
// type-filtered subscriptions.
type Store interface {
	Append(streamID, eventType string, data interface{}) (Event, error)
	Read(streamID string) ([]Event, error)
	ReadAll() ([]Event, error)
	Subscribe(eventTypes []string, handler Handler)
	Unsubscribe(handler Handler)
}
