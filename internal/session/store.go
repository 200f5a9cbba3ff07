// SPDX-License-Identifier: MIT
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// StoreConfig configures a Store
type StoreConfig struct {
	Session       Options
	IdleTTL       time.Duration
	SweepInterval time.Duration
	Logger        *zap.Logger
	// Now overrides the clock, used by tests
	Now func() time.Time
}

// Store keeps live sessions in memory
type Store struct {
	mu            sync.Mutex
	sessions      map[string]*Session
	opts          Options
	idleTTL       time.Duration
	sweepInterval time.Duration
	log           *zap.Logger
	now           func() time.Time

	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

// NewStore creates an empty store. Call Start to begin evicting idle sessions.
func NewStore(cfg StoreConfig) *Store {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Store{
		sessions:      make(map[string]*Session),
		opts:          cfg.Session,
		idleTTL:       cfg.IdleTTL,
		sweepInterval: cfg.SweepInterval,
		log:           cfg.Logger,
		now:           cfg.Now,
	}
}

// Options returns the settings applied to new sessions
func (st *Store) Options() Options {
	return st.opts
}

// Create starts a new session with a random id
func (st *Store) Create() *Session {
	s := New(uuid.NewString(), st.opts)
	s.touch(st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	count := len(st.sessions)
	st.mu.Unlock()

	st.log.Debug("session created", zap.String("session", s.ID), zap.Int("live", count))
	return s
}

// Get returns the live session for id and marks it as seen
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()

	if !ok {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

// Touch marks a session as seen and reports whether it exists
func (st *Store) Touch(id string) bool {
	_, ok := st.Get(id)
	return ok
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep closes and removes sessions idle for longer than the TTL. It
// returns how many were evicted.
func (st *Store) Sweep() int {
	cutoff := st.now().Add(-st.idleTTL)

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		st.log.Debug("evicted idle sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Start runs the idle sweep in a goroutine until Stop
func (st *Store) Start() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.running {
		return
	}
	st.running = true
	st.stopChan = make(chan struct{})
	st.done = make(chan struct{})

	go st.sweepLoop(st.stopChan, st.done)
}

func (st *Store) sweepLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(st.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

// Stop ends the sweep goroutine and waits for it to exit
func (st *Store) Stop() {
	st.mu.Lock()
	if !st.running {
		st.mu.Unlock()
		return
	}
	st.running = false
	stop, done := st.stopChan, st.done
	st.mu.Unlock()

	close(stop)
	<-done
}

// Close stops the sweep and closes every session
func (st *Store) Close() {
	st.Stop()

	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
