package plugin

import (
	"encoding/json"
	"sync"
)

// Message is one categorized event published on the host bus. The wrapper
// only ever observes categories; the payload stays opaque.
type Message struct {
	Category string          `json:"category"`
	TsMs     int64           `json:"ts_ms"`
	URL      string          `json:"url,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Bus is the subscription surface the host exposes to plugins.
type Bus interface {
	// Subscribe registers fn for every published message and returns a
	// cancel function that unregisters it.
	Subscribe(fn func(Message)) (cancel func())
}

// SimpleBus is a minimal synchronous in-process Bus.
type SimpleBus struct {
	mu   sync.Mutex
	subs map[int]func(Message)
	next int
}

// NewSimpleBus returns an empty bus.
func NewSimpleBus() *SimpleBus {
	return &SimpleBus{subs: map[int]func(Message){}}
}

// Subscribe implements Bus.
func (b *SimpleBus) Subscribe(fn func(Message)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers m to every subscriber, synchronously.
func (b *SimpleBus) Publish(m Message) {
	b.mu.Lock()
	fns := make([]func(Message), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(m)
	}
}
