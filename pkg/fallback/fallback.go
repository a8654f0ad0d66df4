// Package fallback implements an ordered, first-match-wins chain of named
// key/value providers. Lookups walk the chain in priority order (index 0 is
// highest) and return the first value found; values from different providers
// are never merged.
package fallback

import "strings"

// Provider is an immutable named view over some backing key/value store.
type Provider interface {
	// Name identifies the provider in debug output.
	Name() string
	// Contains reports whether the provider has a value for key.
	Contains(key string) bool
	// Resolve returns the value for key, if present.
	Resolve(key string) (string, bool)
}

// Debugger is optionally implemented by providers that can enumerate their
// entries for inspection.
type Debugger interface {
	Entries() map[string]string
}

// Map is an ordered sequence of providers. It holds no state of its own and
// never mutates its providers, so a single Map may be read concurrently.
type Map struct {
	providers []Provider
}

// NewMap builds a layered map from the given providers, highest priority
// first.
func NewMap(providers ...Provider) *Map {
	return &Map{providers: providers}
}

// Add appends a provider at the lowest priority position and returns the map
// for chaining.
func (m *Map) Add(p Provider) *Map {
	m.providers = append(m.providers, p)
	return m
}

// Get returns the value from the first provider that has the key. Absence is
// not an error.
func (m *Map) Get(key string) (string, bool) {
	for _, p := range m.providers {
		if v, ok := p.Resolve(key); ok {
			return v, true
		}
	}
	return "", false
}

// Contains reports whether any provider has the key.
func (m *Map) Contains(key string) bool {
	for _, p := range m.providers {
		if p.Contains(key) {
			return true
		}
	}
	return false
}

// IsActive reports whether the key resolves to a truthy value ("true" or
// "1", case-insensitive). Missing keys are inactive.
func (m *Map) IsActive(key string) bool {
	v, ok := m.Get(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1":
		return true
	}
	return false
}

// Source returns the name of the provider that would answer a lookup for
// key, or "" when no provider has it. Useful for debugging precedence.
func (m *Map) Source(key string) string {
	for _, p := range m.providers {
		if p.Contains(key) {
			return p.Name()
		}
	}
	return ""
}

// StaticProvider is a Provider backed by a plain map.
type StaticProvider struct {
	name   string
	values map[string]string
}

// NewStatic builds a provider over the given values. The map is used as-is;
// callers must not mutate it afterwards.
func NewStatic(name string, values map[string]string) *StaticProvider {
	return &StaticProvider{name: name, values: values}
}

func (s *StaticProvider) Name() string { return s.name }

func (s *StaticProvider) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *StaticProvider) Resolve(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Entries implements Debugger.
func (s *StaticProvider) Entries() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
