package realtime

import (
	"sync"

	"booktrack/utils"

	"go.uber.org/zap"
)

// Event is the status-change payload fanned out to a booking's listeners.
type Event struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// Listener receives events published on a channel it has joined.
type Listener interface {
	Send(ev Event) error
}

// BookingChannel names the broadcast channel for one booking.
func BookingChannel(bookingID string) string {
	return "booking_" + bookingID
}

// Hub is an in-process broadcast server. Listeners join named channels and
// receive every event published to those channels while joined; there is no
// persistence or replay. Delivery is best-effort and never fails a publish.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[Listener]struct{}
	logger *zap.Logger
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		rooms:  make(map[string]map[Listener]struct{}),
		logger: utils.GetLogger(),
	}
}

// Join subscribes a listener to a channel and returns the matching leave
// function. Leaving twice is harmless.
func (h *Hub) Join(channel string, l Listener) func() {
	h.mu.Lock()
	room, ok := h.rooms[channel]
	if !ok {
		room = make(map[Listener]struct{})
		h.rooms[channel] = room
	}
	room[l] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if room, ok := h.rooms[channel]; ok {
				delete(room, l)
				if len(room) == 0 {
					delete(h.rooms, channel)
				}
			}
		})
	}
}

// Publish delivers the event to every listener currently joined to the
// channel. Delivery runs outside the caller's path; a failing listener is
// logged and skipped, the publish itself cannot fail.
func (h *Hub) Publish(channel string, ev Event) {
	h.mu.RLock()
	room := h.rooms[channel]
	listeners := make([]Listener, 0, len(room))
	for l := range room {
		listeners = append(listeners, l)
	}
	h.mu.RUnlock()

	if len(listeners) == 0 {
		return
	}

	go func() {
		for _, l := range listeners {
			if err := l.Send(ev); err != nil {
				h.logger.Debug("realtime: dropping undeliverable event",
					zap.String("channel", channel), zap.Error(err))
			}
		}
	}()
}

// ListenerCount reports how many listeners are joined to a channel.
func (h *Hub) ListenerCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[channel])
}
