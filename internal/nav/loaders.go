package nav

import (
	"context"
	"sync"
)

// LoaderFunc is a section data loader. Loaders are fire-and-forget from the
// router's perspective: they must return promptly (scheduling their own
// asynchronous work if needed) and surface their own failures.
type LoaderFunc func(ctx context.Context, id SectionID)

// LoaderRegistry maps sections to their optional data loaders. Absence of a
// loader is not an error.
type LoaderRegistry struct {
	mu      sync.RWMutex
	loaders map[SectionID]LoaderFunc
}

// NewLoaderRegistry creates an empty loader registry
func NewLoaderRegistry() *LoaderRegistry {
	return &LoaderRegistry{loaders: make(map[SectionID]LoaderFunc)}
}

// Register sets the loader for a section, replacing any previous one
func (r *LoaderRegistry) Register(id SectionID, loader LoaderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[id] = loader
}

// Get retrieves the loader for a section
func (r *LoaderRegistry) Get(id SectionID) (LoaderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loader, ok := r.loaders[id]
	return loader, ok
}
