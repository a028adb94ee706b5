// File: paramstore/printer.go
package paramstore

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Printer renders type-erased values as text by dispatching on the value's
// type identity. It is an explicit registry object: the stock render
// functions are seeded at construction, RegisterRender extends the table,
// and an unregistered type always fails with UnknownTypeError rather than
// falling back to some raw representation.
type Printer struct {
	visitors map[reflect.Type]func(any) string
}

// NewPrinter creates a printer with render functions for the stock value
// types: bool, the common integer and float widths, string, and the slice
// forms that show up in parameter files.
func NewPrinter() *Printer {
	p := &Printer{visitors: make(map[reflect.Type]func(any) string)}
	RegisterRender(p, strconv.Itoa)
	RegisterRender(p, func(x int64) string { return strconv.FormatInt(x, 10) })
	RegisterRender(p, func(x uint) string { return strconv.FormatUint(uint64(x), 10) })
	RegisterRender(p, func(x uint64) string { return strconv.FormatUint(x, 10) })
	RegisterRender(p, func(x float32) string { return strconv.FormatFloat(float64(x), 'g', -1, 32) })
	RegisterRender(p, func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) })
	RegisterRender(p, func(x bool) string { return strconv.FormatBool(x) })
	RegisterRender(p, func(x string) string { return x })
	RegisterRender(p, func(x []string) string { return strings.Join(x, " ") })
	RegisterRender(p, func(x []int) string { return joinSlice(x) })
	RegisterRender(p, func(x []int64) string { return joinSlice(x) })
	RegisterRender(p, func(x []float64) string { return joinSlice(x) })
	return p
}

// RegisterRender adds or replaces the render function for T.
func RegisterRender[T any](p *Printer, fn func(T) string) {
	p.visitors[reflect.TypeFor[T]()] = func(v any) string { return fn(v.(T)) }
}

// Render returns the textual form of v, failing with UnknownTypeError when
// no render function is registered for its type identity.
func (p *Printer) Render(v Value) (string, error) {
	fn, ok := p.visitors[v.Identity()]
	if !ok {
		return "", &UnknownTypeError{Type: v.Identity()}
	}
	return fn(v.Raw()), nil
}

// Knows reports whether a render function is registered for t.
func (p *Printer) Knows(t reflect.Type) bool {
	_, ok := p.visitors[t]
	return ok
}

// Types returns the registered type identities, sorted by their textual form.
func (p *Printer) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(p.visitors))
	for t := range p.visitors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })
	return types
}

// Clear empties the registry, including the stock render functions.
func (p *Printer) Clear() {
	p.visitors = make(map[reflect.Type]func(any) string)
}

func joinSlice[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
