package component

import "sync"

// swappableRegistry tracks definitions whose present and future descendants
// are legal targets for class-reference fields. Membership is transitive:
// registering a class covers everything below it.
type swappableRegistry struct {
	mu      sync.RWMutex
	members map[*Definition]struct{}
}

var swappables = &swappableRegistry{members: make(map[*Definition]struct{})}

// RegisterSwappable marks def and all of its descendants as legal targets
// for class-reference fields. The resolver consults the registry
// synchronously while validating definitions.
func RegisterSwappable(def *Definition) {
	if def == nil {
		return
	}
	swappables.mu.Lock()
	defer swappables.mu.Unlock()
	swappables.members[def] = struct{}{}
}

// IsSwappable reports whether def or any of its ancestors has been
// registered swappable.
func IsSwappable(def *Definition) bool {
	if def == nil {
		return false
	}
	swappables.mu.RLock()
	defer swappables.mu.RUnlock()

	for d := def; d != nil; d = d.parent {
		if _, ok := swappables.members[d]; ok {
			return true
		}
	}
	return false
}
