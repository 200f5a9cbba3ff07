// SPDX-License-Identifier: MIT
package ui

import (
	"sync"

	"github.com/temotunadze/lawfolio/internal/events"
)

// ScrollState tracks whether the page has scrolled past a threshold
type ScrollState struct {
	mu        sync.RWMutex
	threshold int
	scrolled  bool
}

// NewScrollState creates a scroll tracker. Negative thresholds are clamped to 0.
func NewScrollState(threshold int) *ScrollState {
	if threshold < 0 {
		threshold = 0
	}
	return &ScrollState{threshold: threshold}
}

// OnScroll records the current vertical offset and reports whether the
// scrolled flag changed
func (s *ScrollState) OnScroll(scrollY int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := scrollY > s.threshold
	changed := next != s.scrolled
	s.scrolled = next
	return changed
}

// Scrolled reports whether the last offset was past the threshold
func (s *ScrollState) Scrolled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scrolled
}

// Threshold returns the configured threshold in pixels
func (s *ScrollState) Threshold() int {
	return s.threshold
}

// Attach feeds scroll events from bus into the tracker
func (s *ScrollState) Attach(bus *events.Bus) func() {
	return bus.Subscribe(events.Scrolled, func(e events.Event) {
		s.OnScroll(e.Y)
	})
}
