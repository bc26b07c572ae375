package live

import (
	"sync"
	"time"
)

// Event announces that a collection changed. Subscribers react by re-reading
// the collection snapshot and recomputing their derived state; the event
// itself carries no document data, so delivery is idempotent and
// order-independent.
type Event struct {
	Collection string    `json:"collection"`
	At         time.Time `json:"at"`
}

// Collection names published by the services.
const (
	CollectionProducts     = "products"
	CollectionTransactions = "transactions"
	CollectionStockLogs    = "stock_logs"
	CollectionParties      = "parties"
	CollectionSerials      = "serial_numbers"
	CollectionCoupons      = "coupons"
	CollectionTickets      = "tickets"
)

const subscriptionBuffer = 16

// Subscription is one listener's stream of change events. Close it when the
// consuming scope exits.
type Subscription struct {
	C chan Event

	hub         *Hub
	collections map[string]bool // empty means all collections
	once        sync.Once
}

// Close detaches the subscription from the hub and releases its channel.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.C)
	})
}

func (s *Subscription) wants(collection string) bool {
	if len(s.collections) == 0 {
		return true
	}
	return s.collections[collection]
}

// Hub fans mutation events out to live subscribers. Every committed write
// publishes exactly one event per touched collection.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]bool)}
}

// Subscribe registers a listener for the given collections; with none given
// it receives every event.
func (h *Hub) Subscribe(collections ...string) *Subscription {
	sub := &Subscription{
		C:           make(chan Event, subscriptionBuffer),
		hub:         h,
		collections: make(map[string]bool, len(collections)),
	}
	for _, c := range collections {
		sub.collections[c] = true
	}

	h.mu.Lock()
	h.subs[sub] = true
	h.mu.Unlock()
	return sub
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Publish notifies every subscriber watching the collection. Sends never
// block: a subscriber with a full buffer already has pending events queued,
// and since consumers re-read the full snapshot per event, the dropped event
// coalesces into the queued ones.
func (h *Hub) Publish(collection string) {
	ev := Event{Collection: collection, At: time.Now()}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if !sub.wants(collection) {
			continue
		}
		select {
		case sub.C <- ev:
		default:
		}
	}
}

// SubscriberCount reports the number of attached subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
