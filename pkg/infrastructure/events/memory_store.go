package events

import (
	"sync"
	"time"
)

// InMemoryStore is an in-process Store. Delivery to subscribers happens
// synchronously inside Append, preserving the engine's run-to-completion
// semantics; handler errors do not fail the append.
type InMemoryStore struct {
	mutex       sync.RWMutex
	streams     map[string][]Event
	allEvents   []Event
	subscribers map[string][]Handler
}

// NewInMemoryStore creates an empty in-memory event store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]Handler),
	}
}

// Verify interface compliance
var _ Store = (*InMemoryStore)(nil)

// Append records an event at the next version of the stream and notifies
// matching subscribers.
func (s *InMemoryStore) Append(streamID, eventType string, data interface{}) (Event, error) {
	s.mutex.Lock()
	event := Event{
		Type:     eventType,
		StreamID: streamID,
		Data:     data,
		At:       time.Now().UTC(),
		Version:  len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], event)
	s.allEvents = append(s.allEvents, event)
	handlers := append([]Handler(nil), s.subscribers[eventType]...)
	s.mutex.Unlock()

	for _, handler := range handlers {
		if handler.CanHandle(event.Type) {
			// Subscribers observe events best-effort; the append has
			// already succeeded.
			_ = handler.Handle(event)
		}
	}

	return event, nil
}

// Read returns the events of one stream in version order.
func (s *InMemoryStore) Read(streamID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.streams[streamID]))
	copy(events, s.streams[streamID])
	return events, nil
}

// ReadAll returns every event in append order.
func (s *InMemoryStore) ReadAll() ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.allEvents))
	copy(events, s.allEvents)
	return events, nil
}

// Subscribe registers a handler for the given event types.
func (s *InMemoryStore) Subscribe(eventTypes []string, handler Handler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
}

// Unsubscribe removes a handler from all event types.
func (s *InMemoryStore) Unsubscribe(handler Handler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for eventType, handlers := range s.subscribers {
		filtered := handlers[:0]
		for _, h := range handlers {
			if h != handler {
				filtered = append(filtered, h)
			}
		}
		s.subscribers[eventType] = filtered
	}
}
