package sse

import "sync"

// Event is one realtime notification pushed to connected studio screens.
type Event struct {
	// Name identifies the change, e.g. "attendance.clock_in" or
	// "transaction.recorded". Clients use it to decide what to refresh.
	Name string
	Data interface{}
}

// Hub fans events out to every connected subscriber. The studio runs a
// handful of screens off one backend, so events are broadcast rather than
// addressed per user.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a listener and returns its channel plus a cleanup
// function the caller must invoke when the connection closes.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}
	return ch, cleanup
}

// Publish sends an event to all subscribers. Slow subscribers are skipped
// rather than blocked on.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of connected listeners.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
