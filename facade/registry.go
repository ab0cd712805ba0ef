package facade

import (
	"fmt"
	"sync"
)

var (
	instances = make(map[string]*Facade)
	mutex     sync.RWMutex
)

// Register adds a named facade to the process-wide registry, for hosts that
// run several application instances and need to look them up by key.
// Returns an error when the key is already taken.
func Register(key string, f *Facade) error {
	mutex.Lock()
	defer mutex.Unlock()

	if _, exists := instances[key]; exists {
		return fmt.Errorf("facade already registered: %s", key)
	}
	instances[key] = f
	return nil
}

// Get returns a registered facade by key.
func Get(key string) (*Facade, bool) {
	mutex.RLock()
	defer mutex.RUnlock()

	f, exists := instances[key]
	return f, exists
}

// Remove deletes a registered facade by key. Unknown keys are a no-op.
func Remove(key string) {
	mutex.Lock()
	defer mutex.Unlock()

	delete(instances, key)
}
