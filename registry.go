package displaylist

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via Register and called by NewBackend.
type BackendFactory func() Backend

// Registry state - protected by mutex for thread-safe access during
// init-time registration from multiple backend packages.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    displaylist.Register("raster", func() displaylist.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics if factory is nil or a backend with the same name is
// already registered, so duplicate registrations surface during program
// initialization rather than silently overwriting backends.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("displaylist: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("displaylist: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing to clean up between tests.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name. The name must match
// a previously registered backend.
//
// Example:
//
//	import _ "github.com/gogpu/displaylist/backends/raster"
//
//	b, err := displaylist.NewBackend("raster")
//
// Returns an error if the backend is not registered; the message hints
// at a forgotten import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("displaylist: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend creates a new backend instance by name, panicking on
// error. Useful when backend availability is guaranteed.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
