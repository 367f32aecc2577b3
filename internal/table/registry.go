package table

import (
	"strings"
	"sync"
)

// Fixture receives the cells of one row. Set is called for every non-blank input
// cell before any Get.
type Fixture interface {
	Set(column, value string) error
	Get(column string) (string, error)
}

// Factory builds a fresh fixture for one row.
type Factory func() Fixture

// Registry maps fixture names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds name to f, replacing any earlier binding.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[fixtureKey(name)] = f
}

// Lookup resolves a table's fixture cell. Package-qualified names
// ("com.example.fixtures.CalculatorFixture") match on their last segment, and the
// "Fixture" suffix is optional.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := fixtureKey(name)
	if f, ok := r.factories[key]; ok {
		return f, true
	}
	f, ok := r.factories[key+"fixture"]
	return f, ok
}

func fixtureKey(name string) string {
	n := strings.TrimSpace(name)
	if i := strings.LastIndex(n, "."); i >= 0 {
		n = n[i+1:]
	}
	return strings.ToLower(strings.Join(strings.Fields(n), ""))
}
