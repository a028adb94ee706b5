// File: paramstore/store3.go
package paramstore

// Store3 is the three-key variant of Store2. The arity is fixed per type;
// deeper arities follow the same pattern.
type Store3[K1, K2, K3 comparable] struct {
	data    map[K1]map[K2]map[K3]*Value
	queries []query3[K1, K2, K3]
}

type query3[K1, K2, K3 comparable] struct {
	fn QueryFunc
	k1 K1
	k2 K2
	k3 K3
}

// NewStore3 creates an empty three-key store.
func NewStore3[K1, K2, K3 comparable]() *Store3[K1, K2, K3] {
	return &Store3[K1, K2, K3]{data: make(map[K1]map[K2]map[K3]*Value)}
}

// Set inserts or overwrites the value at (k1, k2, k3), creating intermediate
// levels as needed, and returns the stored slot.
func (s *Store3[K1, K2, K3]) Set(k1 K1, k2 K2, k3 K3, v Value) *Value {
	level1, ok := s.data[k1]
	if !ok {
		level1 = make(map[K2]map[K3]*Value)
		s.data[k1] = level1
	}
	level2, ok := level1[k2]
	if !ok {
		level2 = make(map[K3]*Value)
		level1[k2] = level2
	}
	slot, ok := level2[k3]
	if !ok {
		slot = new(Value)
		level2[k3] = slot
	}
	*slot = v
	return slot
}

// Get resolves the value at (k1, k2, k3), failing with a KeyNotFoundError
// that names the first absent key and its position.
func (s *Store3[K1, K2, K3]) Get(k1 K1, k2 K2, k3 K3) (*Value, error) {
	level1, ok := s.data[k1]
	if !ok {
		return nil, &KeyNotFoundError{Position: 0, Key: keyText(k1)}
	}
	level2, ok := level1[k2]
	if !ok {
		return nil, &KeyNotFoundError{Position: 1, Key: keyText(k2)}
	}
	slot, ok := level2[k3]
	if !ok {
		return nil, &KeyNotFoundError{Position: 2, Key: keyText(k3)}
	}
	return slot, nil
}

// Query registers fn to be run later against the value at (k1, k2, k3).
func (s *Store3[K1, K2, K3]) Query(fn QueryFunc, k1 K1, k2 K2, k3 K3) {
	s.queries = append(s.queries, query3[K1, K2, K3]{fn: fn, k1: k1, k2: k2, k3: k3})
}

// RunQueries runs the registered queries in registration order with the same
// failure semantics as Store2.RunQueries.
func (s *Store3[K1, K2, K3]) RunQueries() error {
	for _, q := range s.queries {
		slot, err := s.Get(q.k1, q.k2, q.k3)
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
func (s *Store3[K1, K2, K3]) Len() int {
	n := 0
	for _, level1 := range s.data {
		for _, level2 := range level1 {
			n += len(level2)
		}
	}
	return n
}
