// Package registry maps logical limiter names to live limiter instances.
//
// The registry is the only globally shared mutable structure in gogate.
// It holds non-owning references: the limiter instances own their state,
// the registry only routes names to handles. All operations are safe for
// concurrent use, and registration is atomic with the uniqueness check so
// lookups never observe a torn entry.
package registry

import (
	"sync"
	"sync/atomic"
	"time"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/limiter"
)

// Entry is one live registration. LastActive is updated on every admission
// request so idle instances can be identified for eviction.
type Entry struct {
	Name      string
	Handle    limiter.Limiter
	Algorithm limiter.Algorithm
	Created   time.Time

	lastActive atomic.Int64 // unix nanos
}

// Touch records request activity on the entry.
func (e *Entry) Touch() {
	e.lastActive.Store(time.Now().UnixNano())
}

// IdleFor returns how long the entry has gone without a request,
// measured from creation if it has never been touched.
func (e *Entry) IdleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, e.lastActive.Load()))
}

// Registry is a concurrency-safe map from limiter name to live instance.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Register inserts an entry for name. It fails with ErrAlreadyRegistered
// if name is already live; the check and insert are atomic.
func (r *Registry) Register(name string, handle limiter.Limiter, algorithm limiter.Algorithm) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return nil, ggerrors.ErrAlreadyRegistered
	}

	e := &Entry{
		Name:      name,
		Handle:    handle,
		Algorithm: algorithm,
		Created:   time.Now(),
	}
	e.Touch()
	r.entries[name] = e
	return e, nil
}

// Lookup returns the entry for name, or ErrNotFound if absent.
func (r *Registry) Lookup(name string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, ggerrors.ErrNotFound
	}
	return e, nil
}

// Deregister removes the entry for name and returns it. Deregistering an
// absent name is not an error; the second return reports whether the name
// was live. The caller remains responsible for stopping the instance.
func (r *Registry) Deregister(name string) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[name]
	if ok {
		delete(r.entries, name)
	}
	return e, ok
}

// Names returns the names of all live entries, in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
