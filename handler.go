// File: paramstore/handler.go
package paramstore

import (
	"fmt"
	"sort"
	"strings"
)

// Access is the capability a validation rule needs from a parameter handler:
// presence checks, type-erased reads, and inserts (for default filling).
// Handler is the stock implementation; any flat name-to-value container can
// stand in.
type Access[K comparable] interface {
	Contains(name K) bool
	Data(name K) (Value, error)
	Insert(name K, v Value)
}

// Handler is a flat mapping from parameter names to type-erased values. It is
// the container the validation controller checks and mutates: a parameter
// file or command line is loaded into a Handler, rules then read it and fill
// in defaults. Single owner, not safe for concurrent mutation.
type Handler[K comparable] struct {
	data map[K]Value
}

// NewHandler creates an empty handler.
func NewHandler[K comparable]() *Handler[K] {
	return &Handler[K]{data: make(map[K]Value)}
}

// Insert stores v under name, overwriting any previous value.
func (h *Handler[K]) Insert(name K, v Value) {
	h.data[name] = v
}

// Contains reports whether name holds a value.
func (h *Handler[K]) Contains(name K) bool {
	_, ok := h.data[name]
	return ok
}

// Data returns the type-erased value stored under name, failing with a
// KeyNotFoundError when absent.
func (h *Handler[K]) Data(name K) (Value, error) {
	v, ok := h.data[name]
	if !ok {
		return Value{}, &KeyNotFoundError{Position: 0, Key: keyText(name)}
	}
	return v, nil
}

// Clear removes every entry.
func (h *Handler[K]) Clear() {
	h.data = make(map[K]Value)
}

// Len reports the number of stored entries.
func (h *Handler[K]) Len() int { return len(h.data) }

// Names returns the stored names in an unspecified order.
func (h *Handler[K]) Names() []K {
	names := make([]K, 0, len(h.data))
	for name := range h.data {
		names = append(names, name)
	}
	return names
}

// Format renders every entry as "name: value" lines, sorted by the textual
// form of the name for stable output. It fails on the first entry whose type
// the printer does not know.
func (h *Handler[K]) Format(p *Printer) (string, error) {
	type entry struct {
		text string
		name K
	}
	entries := make([]entry, 0, len(h.data))
	for name := range h.data {
		entries = append(entries, entry{text: keyText(name), name: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].text < entries[j].text })

	var b strings.Builder
	for _, e := range entries {
		rendered, err := p.Render(h.data[e.name])
		if err != nil {
			return "", fmt.Errorf("entry %q: %w", e.text, err)
		}
		fmt.Fprintf(&b, "%s: %s\n", e.text, rendered)
	}
	return b.String(), nil
}

// Put boxes v and stores it under name.
func Put[T any, K comparable](h *Handler[K], name K, v T) {
	h.Insert(name, Box(v))
}

// Fetch returns the value stored under name as T. It fails with
// KeyNotFoundError when absent and TypeMismatchError when the stored type
// differs from T.
func Fetch[T any, K comparable](h *Handler[K], name K) (T, error) {
	v, err := h.Data(name)
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := Extract[T](v)
	if err != nil {
		if tm, ok := err.(*TypeMismatchError); ok {
			tm.Name = keyText(name)
		}
		return out, err
	}
	return out, nil
}
