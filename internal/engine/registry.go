package engine

import "fmt"

// Registry is the process-wide, write-once-then-read-only registry of §4.1
// and §5: engines register at startup; duplicate registration under the
// same name fails fast; lookups after startup never mutate the map, so no
// lock is required on the read path.
type Registry struct {
	engines map[string]Engine
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// Register adds e under e.Name(). It panics on duplicate registration,
// matching the "fails fast at initialisation" requirement of §4.1 — this
// is only ever called from package init/main wiring, never at request time.
func (r *Registry) Register(e Engine) {
	name := e.Name()
	if _, exists := r.engines[name]; exists {
		panic(fmt.Sprintf("engine: duplicate registration for %q", name))
	}
	r.engines[name] = e
	r.order = append(r.order, name)
}

// Lookup returns the engine registered under name, or (nil, false).
func (r *Registry) Lookup(name string) (Engine, bool) {
	e, ok := r.engines[name]
	return e, ok
}

// Names returns every registered engine name in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns every registered engine in registration order.
func (r *Registry) All() []Engine {
	out := make([]Engine, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.engines[name])
	}
	return out
}
