// README: Observability hub; typed event taps with explicit unsubscribe.
package debug

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

type Kind string

const (
	KindRequest  Kind = "request"
	KindResponse Kind = "response"
	KindParsed   Kind = "parsed"
	KindError    Kind = "error"
)

// Event is one observed request/response/error occurrence.
type Event struct {
	ID   string    `json:"id"`
	Kind Kind      `json:"type"`
	At   time.Time `json:"timestamp"`
	Data any       `json:"data"`
}

const defaultMaxRecent = 200

// Hub fans events out to subscribers and keeps a bounded recent-event buffer
// for the debug surface. Every subscription returns an unsubscribe handle so
// listeners cannot leak across session lifecycles.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
	recent []Event
	max    int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(Event)), max: defaultMaxRecent}
}

// Subscribe registers fn for all events. The returned function removes the
// subscription and is safe to call more than once.
func (h *Hub) Subscribe(fn func(Event)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Emit records the event and delivers it to current subscribers.
func (h *Hub) Emit(kind Kind, data any) {
	ev := Event{ID: newID(), Kind: kind, At: time.Now(), Data: data}

	h.mu.Lock()
	h.recent = append(h.recent, ev)
	if len(h.recent) > h.max {
		trimmed := make([]Event, h.max)
		copy(trimmed, h.recent[len(h.recent)-h.max:])
		h.recent = trimmed
	}
	targets := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		targets = append(targets, fn)
	}
	h.mu.Unlock()

	for _, fn := range targets {
		fn(ev)
	}
}

// Recent returns a copy of the buffered events, oldest first.
func (h *Hub) Recent() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Event, len(h.recent))
	copy(out, h.recent)
	return out
}

func (h *Hub) Clear() {
	h.mu.Lock()
	h.recent = nil
	h.mu.Unlock()
}

func newID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
