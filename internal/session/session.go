// SPDX-License-Identifier: MIT

// Package session binds the view state holders of one visitor to a private
// event bus and keeps them in an in-memory store with idle eviction.
package session

import (
	"sync"
	"time"

	"github.com/temotunadze/lawfolio/internal/contact"
	"github.com/temotunadze/lawfolio/internal/events"
	"github.com/temotunadze/lawfolio/internal/ui"
)

// Options configures the state holders of new sessions
type Options struct {
	Links              []ui.Link
	Nav                ui.NavOptions
	ScrollTopThreshold int
	Contact            contact.Options
}

// Snapshot is the complete view state sent to the browser
type Snapshot struct {
	Nav           ui.NavSnapshot   `json:"nav"`
	ShowScrollTop bool             `json:"show_scroll_top"`
	Contact       contact.Snapshot `json:"contact"`
}

// Session is one visitor's view state
type Session struct {
	ID      string
	Nav     *ui.NavigationState
	Footer  *ui.ScrollState
	Contact *contact.FormState

	bus      *events.Bus
	mu       sync.Mutex
	lastSeen time.Time
	unsubs   []func()
	closed   bool
}

// New creates a session and wires its state holders to a fresh bus
func New(id string, opts Options) *Session {
	threshold := opts.ScrollTopThreshold
	if threshold <= 0 {
		threshold = ui.DefaultScrollTopThreshold
	}

	s := &Session{
		ID:       id,
		Nav:      ui.NewNavigationState(opts.Links, opts.Nav),
		Footer:   ui.NewScrollState(threshold),
		Contact:  contact.NewFormState(opts.Contact),
		bus:      events.NewBus(),
		lastSeen: time.Now(),
	}

	s.unsubs = append(s.unsubs,
		s.Nav.Attach(s.bus),
		s.Footer.Attach(s.bus),
		s.Contact.OnChange(func(contact.Snapshot) {
			s.bus.Publish(events.Event{Kind: events.StateChanged})
		}),
	)
	return s
}

// Bus returns the session's event bus
func (s *Session) Bus() *events.Bus {
	return s.bus
}

// Dispatch delivers a browser event and announces the resulting state
func (s *Session) Dispatch(e events.Event) {
	if s.isClosed() {
		return
	}
	s.bus.Publish(e)
	s.bus.Publish(events.Event{Kind: events.StateChanged})
}

// Navigate activates path through the navigation state, which also asks the
// host router to change location
func (s *Session) Navigate(path string) {
	if s.isClosed() {
		return
	}
	s.Nav.Navigate(path)
	s.bus.Publish(events.Event{Kind: events.StateChanged})
}

// Changed announces a state change made directly on a holder
func (s *Session) Changed() {
	if s.isClosed() {
		return
	}
	s.bus.Publish(events.Event{Kind: events.StateChanged})
}

// Snapshot returns the current view state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Nav:           s.Nav.Snapshot(),
		ShowScrollTop: s.Footer.Scrolled(),
		Contact:       s.Contact.Snapshot(),
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the last request for this session
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Closed reports whether the session has been torn down
func (s *Session) Closed() bool {
	return s.isClosed()
}

// Close releases every subscription and cancels pending contact transitions
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	s.Contact.Close()
	s.bus.Close()
}
