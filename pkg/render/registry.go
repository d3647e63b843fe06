package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores renderer strategies by kind name, providing discovery and
// duplication safeguards. Callers can embed or wrap this for dependency
// injection.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Strategy),
	}
}

// Register adds a strategy by its Name(). Duplicate names return an error.
func (r *Registry) Register(strategy Strategy) error {
	if strategy == nil {
		return fmt.Errorf("render: strategy is required")
	}
	name := strategy.Name()
	if name == "" {
		return fmt.Errorf("render: strategy name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[name]; exists {
		return fmt.Errorf("render: strategy %q already registered", name)
	}

	r.strategies[name] = strategy
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(strategy Strategy) {
	if err := r.Register(strategy); err != nil {
		panic(err)
	}
}

// Get retrieves a strategy by kind name.
func (r *Registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("render: strategy %q not found", name)
	}
	return strategy, nil
}

// List returns a sorted list of registered kind names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a strategy is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.strategies[name]
	return ok
}
