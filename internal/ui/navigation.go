// SPDX-License-Identifier: MIT

// Package ui holds the per-session view state behind the navbar and footer:
// which route is highlighted, whether the mobile menu is open, and the
// scroll-driven visual flags.
package ui

import (
	"strings"
	"sync"

	"github.com/temotunadze/lawfolio/internal/events"
)

// Viewport is the responsive class of the browser window
type Viewport string

const (
	ViewportMobile  Viewport = "mobile"
	ViewportDesktop Viewport = "desktop"
)

// Default thresholds observed on the live site
const (
	DefaultNavbarScrollThreshold = 20
	DefaultScrollTopThreshold    = 300
	DefaultBreakpoint            = 768
)

// Link is a navigation entry
type Link struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// NavOptions configures a NavigationState
type NavOptions struct {
	ScrollThreshold int
	Breakpoint      int
}

// NavSnapshot is a read-only copy of the navigation state
type NavSnapshot struct {
	ActiveRoute string   `json:"active_route"`
	MenuOpen    bool     `json:"menu_open"`
	Scrolled    bool     `json:"scrolled"`
	Viewport    Viewport `json:"viewport"`
	Links       []Link   `json:"links"`
}

// NavigationState tracks the active route and mobile menu visibility
type NavigationState struct {
	mu          sync.RWMutex
	links       []Link
	activeRoute string
	menuOpen    bool
	viewport    Viewport
	breakpoint  int
	scroll      *ScrollState
	bus         *events.Bus
}

// NewNavigationState creates navigation state for the given links. A zero
// option falls back to the site defaults.
func NewNavigationState(links []Link, opts NavOptions) *NavigationState {
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	if opts.ScrollThreshold <= 0 {
		opts.ScrollThreshold = DefaultNavbarScrollThreshold
	}

	own := make([]Link, len(links))
	for i, l := range links {
		own[i] = Link{Label: l.Label, Href: l.Href}
	}

	return &NavigationState{
		links:       own,
		activeRoute: "/",
		viewport:    ViewportDesktop,
		breakpoint:  opts.Breakpoint,
		scroll:      NewScrollState(opts.ScrollThreshold),
	}
}

// NormalizeRoute trims query, fragment and trailing slash. Empty becomes "/".
func NormalizeRoute(path string) string {
	if i := strings.IndexAny(path, "?#"); i != -1 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// SetActiveRoute marks path as the current route
func (n *NavigationState) SetActiveRoute(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activeRoute = NormalizeRoute(path)
}

// ActiveRoute returns the current route
func (n *NavigationState) ActiveRoute() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.activeRoute
}

// IsActive reports whether href is the current route. In-page anchors and
// external links are never active.
func (n *NavigationState) IsActive(href string) bool {
	if !strings.HasPrefix(href, "/") {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	return NormalizeRoute(href) == n.activeRoute
}

// Links returns the navigation links with the active one marked
func (n *NavigationState) Links() []Link {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.linksLocked()
}

func (n *NavigationState) linksLocked() []Link {
	out := make([]Link, len(n.links))
	for i, l := range n.links {
		l.Active = strings.HasPrefix(l.Href, "/") && NormalizeRoute(l.Href) == n.activeRoute
		out[i] = l
	}
	return out
}

// ToggleMenu flips the mobile menu and returns the new value
func (n *NavigationState) ToggleMenu() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// MenuOpen reports whether the mobile menu is open
func (n *NavigationState) MenuOpen() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.menuOpen
}

// CloseMenuOnNavigate closes the mobile menu
func (n *NavigationState) CloseMenuOnNavigate() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = false
}

// Navigate handles a link activation: the menu closes, the route becomes
// active and a navigate request goes out to the host router if attached.
func (n *NavigationState) Navigate(path string) {
	route := NormalizeRoute(path)

	n.mu.Lock()
	n.menuOpen = false
	n.activeRoute = route
	bus := n.bus
	n.mu.Unlock()

	if bus != nil {
		bus.Publish(events.Event{Kind: events.NavigateRequested, Path: route})
	}
}

// OnScroll updates the scrolled flag and reports whether it changed
func (n *NavigationState) OnScroll(scrollY int) bool {
	return n.scroll.OnScroll(scrollY)
}

// ScrollThreshold returns the offset past which the navbar turns solid
func (n *NavigationState) ScrollThreshold() int {
	return n.scroll.Threshold()
}

// Breakpoint returns the viewport width below which the mobile menu is used
func (n *NavigationState) Breakpoint() int {
	return n.breakpoint
}

// Scrolled reports whether the navbar should show its solid background
func (n *NavigationState) Scrolled() bool {
	return n.scroll.Scrolled()
}

// OnResize records the viewport class for width. Moving to desktop closes the
// mobile menu because it is only presented below the breakpoint.
func (n *NavigationState) OnResize(width int) Viewport {
	n.mu.Lock()
	defer n.mu.Unlock()

	if width < n.breakpoint {
		n.viewport = ViewportMobile
	} else {
		n.viewport = ViewportDesktop
		n.menuOpen = false
	}
	return n.viewport
}

// Viewport returns the last recorded viewport class
func (n *NavigationState) Viewport() Viewport {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.viewport
}

// Snapshot returns a copy of the current state
func (n *NavigationState) Snapshot() NavSnapshot {
	scrolled := n.scroll.Scrolled()

	n.mu.RLock()
	defer n.mu.RUnlock()
	return NavSnapshot{
		ActiveRoute: n.activeRoute,
		MenuOpen:    n.menuOpen,
		Scrolled:    scrolled,
		Viewport:    n.viewport,
		Links:       n.linksLocked(),
	}
}

// Attach subscribes to route, scroll, resize and menu events on bus. The
// returned function releases every subscription.
func (n *NavigationState) Attach(bus *events.Bus) func() {
	n.mu.Lock()
	n.bus = bus
	n.mu.Unlock()

	unsubs := []func(){
		bus.Subscribe(events.RouteChanged, func(e events.Event) {
			n.SetActiveRoute(e.Path)
			n.CloseMenuOnNavigate()
		}),
		bus.Subscribe(events.Scrolled, func(e events.Event) {
			n.OnScroll(e.Y)
		}),
		bus.Subscribe(events.Resized, func(e events.Event) {
			n.OnResize(e.Width)
		}),
		bus.Subscribe(events.MenuToggled, func(events.Event) {
			n.ToggleMenu()
		}),
	}

	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
		n.mu.Lock()
		if n.bus == bus {
			n.bus = nil
		}
		n.mu.Unlock()
	}
}
