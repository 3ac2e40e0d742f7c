package sprite

import (
	"errors"
	"reflect"
	"sync"
)

// Registry errors.
var (
	// ErrNilComponent is returned when Add is called with nil.
	ErrNilComponent = errors.New("sprite: component is nil")

	// ErrStaleHandle is returned when a handle no longer refers to a live entry.
	ErrStaleHandle = errors.New("sprite: stale registry handle")
)

// Handle identifies a registry entry. Handles are generation-checked: after
// the entry is removed, the handle goes stale and is rejected instead of
// silently addressing a reused slot.
type Handle struct {
	index int
	gen   uint32
}

// Registry is an insertion-ordered collection of components, indexed by
// concrete type at registration time so typed queries are direct lookups
// rather than linear type tests. Insertion order is preserved globally and
// within each type.
//
// The Registry itself is safe for concurrent use: Add and Remove may run
// while the frame Loop queries from its goroutine. The components it holds
// are not; mutate their state on the loop goroutine, inside the WithUpdate
// callback.
type Registry struct {
	mu      sync.RWMutex
	entries []registryEntry
	byType  map[reflect.Type][]int
}

type registryEntry struct {
	c    Component
	typ  reflect.Type
	gen  uint32
	live bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[reflect.Type][]int)}
}

// Add appends c to the collection and returns its handle. Insertion order is
// the iteration and draw order. No deduplication: adding the same component
// twice yields two entries.
func (r *Registry) Add(c Component) (Handle, error) {
	if c == nil {
		return Handle{}, ErrNilComponent
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	t := reflect.TypeOf(c)
	idx := len(r.entries)
	r.entries = append(r.entries, registryEntry{c: c, typ: t, live: true})
	r.byType[t] = append(r.byType[t], idx)
	return Handle{index: idx, gen: 0}, nil
}

// Remove detaches the entry h refers to. The handle goes stale; removing
// twice returns ErrStaleHandle. Relative order of the remaining entries is
// unchanged.
func (r *Registry) Remove(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.index < 0 || h.index >= len(r.entries) {
		return ErrStaleHandle
	}
	e := &r.entries[h.index]
	if !e.live || e.gen != h.gen {
		return ErrStaleHandle
	}
	e.live = false
	e.gen++

	indices := r.byType[e.typ]
	for i, idx := range indices {
		if idx == h.index {
			r.byType[e.typ] = append(indices[:i], indices[i+1:]...)
			break
		}
	}
	e.c = nil
	return nil
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for i := range r.entries {
		if r.entries[i].live {
			n++
		}
	}
	return n
}

// All returns the live components in insertion order.
func (r *Registry) All() []Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Component, 0, len(r.entries))
	for i := range r.entries {
		if r.entries[i].live {
			out = append(out, r.entries[i].c)
		}
	}
	return out
}

// Get returns, in insertion order, every live entry whose type is T.
// For a concrete T the lookup is a direct per-type index; for an interface T
// the registry scans in order and keeps the entries that satisfy it. The
// result is empty when nothing matches. The collection is never mutated.
func Get[T Component](r *Registry) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tt := reflect.TypeOf((*T)(nil)).Elem()
	if tt.Kind() == reflect.Interface {
		var out []T
		for i := range r.entries {
			if !r.entries[i].live {
				continue
			}
			if c, ok := r.entries[i].c.(T); ok {
				out = append(out, c)
			}
		}
		return out
	}

	indices := r.byType[tt]
	out := make([]T, 0, len(indices))
	for _, idx := range indices {
		out = append(out, r.entries[idx].c.(T))
	}
	return out
}
