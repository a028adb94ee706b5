// File: paramstore/store.go
package paramstore

import "fmt"

// QueryFunc is the signature of a deferred query callback. It receives a
// mutable pointer to the resolved value slot, valid only for the duration of
// the call. A non-nil error aborts the remaining queries of the batch.
type QueryFunc = func(*Value) error

// Store2 maps an ordered pair of keys to a type-erased value through two
// levels of nested maps, and collects deferred queries to be run in a single
// batch once the store is populated. Keys need equality only; levels are
// created on demand by Set and an empty intermediate level is harmless.
//
// Store2 is a configuration-time structure: single owner, not safe for
// concurrent mutation.
type Store2[K1, K2 comparable] struct {
	data    map[K1]map[K2]*Value
	queries []query2[K1, K2]
}

type query2[K1, K2 comparable] struct {
	fn QueryFunc
	k1 K1
	k2 K2
}

// NewStore2 creates an empty two-key store.
func NewStore2[K1, K2 comparable]() *Store2[K1, K2] {
	return &Store2[K1, K2]{data: make(map[K1]map[K2]*Value)}
}

// Set inserts or overwrites the value at (k1, k2), creating the intermediate
// level if needed, and returns the stored slot. It never fails.
func (s *Store2[K1, K2]) Set(k1 K1, k2 K2, v Value) *Value {
	level, ok := s.data[k1]
	if !ok {
		level = make(map[K2]*Value)
		s.data[k1] = level
	}
	slot, ok := level[k2]
	if !ok {
		slot = new(Value)
		level[k2] = slot
	}
	*slot = v
	return slot
}

// Get resolves the value at (k1, k2). The first absent key along the path
// fails with a KeyNotFoundError naming that key and its position.
func (s *Store2[K1, K2]) Get(k1 K1, k2 K2) (*Value, error) {
	level, ok := s.data[k1]
	if !ok {
		return nil, &KeyNotFoundError{Position: 0, Key: keyText(k1)}
	}
	slot, ok := level[k2]
	if !ok {
		return nil, &KeyNotFoundError{Position: 1, Key: keyText(k2)}
	}
	return slot, nil
}

// Query registers fn to be run later against the value at (k1, k2). The path
// is not resolved here, so registration succeeds even for paths that do not
// exist yet; an unresolved path surfaces from RunQueries instead.
func (s *Store2[K1, K2]) Query(fn QueryFunc, k1 K1, k2 K2) {
	s.queries = append(s.queries, query2[K1, K2]{fn: fn, k1: k1, k2: k2})
}

// RunQueries resolves every registered query path in registration order and
// invokes its callback with the mutable slot. The first failure, unresolved
// path or callback error alike, aborts the remaining queries; effects of
// earlier queries are kept. Queries stay registered, so RunQueries may be
// called again and re-reads the then-current state.
func (s *Store2[K1, K2]) RunQueries() error {
	for _, q := range s.queries {
		slot, err := s.Get(q.k1, q.k2)
		if err != nil {
			return err
		}
		if err := q.fn(slot); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of populated leaves.
func (s *Store2[K1, K2]) Len() int {
	n := 0
	for _, level := range s.data {
		n += len(level)
	}
	return n
}

// keyText renders a key for error reporting: strings verbatim, everything
// else through its default textual representation.
func keyText(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
