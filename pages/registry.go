package pages

import (
	"bikedemand/forms"
	"sync"
	"time"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps live sessions in memory, keyed by session id.
// Entries idle for longer than the TTL are dropped, and at most max entries
// are kept; when full, the least recently seen entry makes room.
type Registry struct {
	predictor forms.Predictor
	ttl       time.Duration
	max       int
	now       func() time.Time

	mu        sync.Mutex
	sessions  map[string]*entry
	lastSweep time.Time
}

// NewRegistry creates an empty registry. A zero ttl keeps sessions until
// they are pushed out; a zero max leaves the size unbounded.
func NewRegistry(predictor forms.Predictor, ttl time.Duration, max int) *Registry {
	return &Registry{
		predictor: predictor,
		ttl:       ttl,
		max:       max,
		now:       time.Now,
		sessions:  make(map[string]*entry),
	}
}

// Blank returns a fresh session that is not tracked by the registry.
// It renders the default form for visitors who have not submitted yet.
func (r *Registry) Blank() *Session {
	return NewSession(r.predictor)
}

// Lookup returns the live session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	e, ok := r.sessions[id]
	if !ok || r.expired(e, now) {
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// Get returns the session for id, creating it on first use.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	e, ok := r.sessions[id]
	if !ok || r.expired(e, now) {
		if !ok && r.max > 0 && len(r.sessions) >= r.max {
			r.evictOldestLocked()
		}
		e = &entry{session: NewSession(r.predictor)}
		r.sessions[id] = e
	}
	e.lastSeen = now
	return e.session
}

// Drop forgets the session for id.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}

// sweepLocked drops expired entries, at most once per ttl.
func (r *Registry) sweepLocked(now time.Time) {
	if r.ttl <= 0 || now.Sub(r.lastSweep) < r.ttl {
		return
	}
	r.lastSweep = now
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(r.sessions, oldestID)
}
