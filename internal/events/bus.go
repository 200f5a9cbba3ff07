// SPDX-License-Identifier: MIT

// Package events is the per-session event channel between the browser and
// the view state holders. Handlers are explicit subscriptions that the owner
// releases on teardown.
package events

import (
	"sync"
)

// Kind identifies an event type
type Kind string

const (
	RouteChanged      Kind = "route.changed"
	Scrolled          Kind = "scroll"
	Resized           Kind = "resize"
	MenuToggled       Kind = "menu.toggle"
	NavigateRequested Kind = "navigate.requested"
	StateChanged      Kind = "state.changed"
)

// Event is a single notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind  Kind
	Path  string
	Y     int
	Width int
}

// Handler receives published events
type Handler func(Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus dispatches events synchronously to subscribers in subscription order
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Kind][]subscription
	closed bool
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[Kind][]subscription)}
}

// Subscribe registers handler for kind. The returned function removes the
// subscription and is safe to call more than once.
func (b *Bus) Subscribe(kind Kind, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return func() {}
	}

	b.nextID++
	id := b.nextID
	b.subs[kind] = append(b.subs[kind], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(kind, id) })
	}
}

func (b *Bus) unsubscribe(kind Kind, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[kind]
	for i, s := range subs {
		if s.id == id {
			b.subs[kind] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[kind]) == 0 {
		delete(b.subs, kind)
	}
}

// Publish delivers e to every current subscriber of e.Kind. Handlers may
// publish further events or unsubscribe themselves.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := make([]subscription, len(b.subs[e.Kind]))
	copy(subs, b.subs[e.Kind])
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(e)
	}
}

// Subscribers returns the number of live subscriptions for kind
func (b *Bus) Subscribers(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[kind])
}

// Close drops every subscription; later publishes are ignored
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = make(map[Kind][]subscription)
}
