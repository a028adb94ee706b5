// File: paramstore/registry.go
package paramstore

import "sort"

// Registry maps names to builder functions for one polymorphic family, so
// parameter files can select implementations by string. It is an explicit
// object with no registration side effects at package load: callers create
// it, register builders, and clear it when done.
type Registry[T any] struct {
	entries map[string]func() T
}

// NewRegistry creates an empty registry for builders of T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]func() T)}
}

// Register adds or replaces the builder stored under name.
func (r *Registry[T]) Register(name string, build func() T) {
	r.entries[name] = build
}

// Build constructs a new T by name, failing with NotRegisteredError when the
// name is unknown.
func (r *Registry[T]) Build(name string) (T, error) {
	build, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, &NotRegisteredError{Name: name}
	}
	return build(), nil
}

// Contains reports whether a builder is registered under name.
func (r *Registry[T]) Contains(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove deletes the builder stored under name, if any.
func (r *Registry[T]) Remove(name string) {
	delete(r.entries, name)
}

// Clear removes every registered builder.
func (r *Registry[T]) Clear() {
	r.entries = make(map[string]func() T)
}
