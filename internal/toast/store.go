// Package toast holds the process-wide queue of transient user-facing
// messages. Any component may push; a display surface renders active toasts
// and they expire on their own.
package toast

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Severity classifies a toast for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultTTL applies when Push is called without an explicit lifetime.
const DefaultTTL = 4 * time.Second

const idLength = 12

// Toast is a single transient message. Its lifetime is independent of any
// other entity.
type Toast struct {
	ID        string
	Message   string
	Severity  Severity
	TTL       time.Duration
	CreatedAt time.Time
}

// Store is an insertion-ordered toast queue. Safe for concurrent pushers: id
// generation and the append happen under one lock, so concurrent pushes can
// never collide on id.
type Store struct {
	defaultTTL time.Duration

	mu     sync.Mutex
	toasts []Toast
	timers map[string]*time.Timer
}

// NewStore builds a store. A non-positive defaultTTL falls back to DefaultTTL.
func NewStore(defaultTTL time.Duration) *Store {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Store{
		defaultTTL: defaultTTL,
		timers:     make(map[string]*time.Timer),
	}
}

// Push appends a toast and schedules its expiry. Insertion order is display
// order. An omitted or non-positive ttl uses the store default.
func (s *Store) Push(message string, severity Severity, ttl ...time.Duration) Toast {
	lifetime := s.defaultTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		lifetime = ttl[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := gonanoid.Must(idLength)
	for _, exists := s.timers[id]; exists; _, exists = s.timers[id] {
		id = gonanoid.Must(idLength)
	}

	t := Toast{
		ID:        id,
		Message:   message,
		Severity:  severity,
		TTL:       lifetime,
		CreatedAt: time.Now(),
	}
	s.toasts = append(s.toasts, t)
	s.timers[id] = time.AfterFunc(lifetime, func() { s.Dismiss(id) })
	return t
}

// Info pushes an informational toast with the default lifetime.
func (s *Store) Info(message string) { s.Push(message, SeverityInfo) }

// Success pushes a success toast with the default lifetime.
func (s *Store) Success(message string) { s.Push(message, SeveritySuccess) }

// Warning pushes a warning toast with the default lifetime.
func (s *Store) Warning(message string) { s.Push(message, SeverityWarning) }

// Error pushes an error toast with the default lifetime.
func (s *Store) Error(message string) { s.Push(message, SeverityError) }

// Dismiss removes the toast with the given id. Dismissing an id that is
// already gone is a no-op.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

// Active returns the current toasts in display order.
func (s *Store) Active() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Drain returns the current toasts in display order and dismisses them all.
// The terminal surface calls this after rendering: printed text does not need
// to linger the way an on-screen toast does.
func (s *Store) Drain() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	for _, t := range out {
		s.remove(t.ID)
	}
	return out
}

// remove must be called with the lock held.
func (s *Store) remove(id string) {
	timer, ok := s.timers[id]
	if !ok {
		return
	}
	timer.Stop()
	delete(s.timers, id)
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			break
		}
	}
}
