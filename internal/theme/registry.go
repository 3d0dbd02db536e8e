package theme

import (
	"context"
	"sync"
)

// PersisterFactory builds the persister for one visitor.
type PersisterFactory func(visitorID string) Persister

// Registry hands out one Store per visitor, so every open tab of a visitor
// shares the same preference.
type Registry struct {
	mu      sync.Mutex
	stores  map[string]*entry
	factory PersisterFactory
}

// entry is a cached store and the number of holders that have not yet
// released it.
type entry struct {
	store *Store
	refs  int
}

// NewRegistry creates a registry. A nil factory keeps preferences in memory.
func NewRegistry(factory PersisterFactory) *Registry {
	if factory == nil {
		factory = func(string) Persister { return &MemoryPersister{} }
	}
	return &Registry{
		stores:  make(map[string]*entry),
		factory: factory,
	}
}

// Store returns the visitor's store, loading it on first use, and a release
// function the caller must call when done with it. The store stays open
// until every holder has released it. Release is idempotent.
func (r *Registry) Store(ctx context.Context, visitorID string) (*Store, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.stores[visitorID]
	if !ok {
		e = &entry{store: NewStore(ctx, r.factory(visitorID))}
		r.stores[visitorID] = e
	}
	e.refs++

	var once sync.Once
	return e.store, func() {
		once.Do(func() { r.release(visitorID, e) })
	}
}

func (r *Registry) release(visitorID string, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.refs--
	if e.refs > 0 {
		return
	}
	e.store.Close()
	if r.stores[visitorID] == e {
		delete(r.stores, visitorID)
	}
}

// Len returns the number of cached stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Close tears down every store.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.stores {
		e.store.Close()
		delete(r.stores, id)
	}
}
