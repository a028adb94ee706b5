// File: paramstore/rules.go
package paramstore

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// Rule is one validation or mutation step in a parameter's rule chain. A rule
// may read the handler, write to it, or both; it reports the first violation
// it finds and performs no recovery. Rules carry the identity of their
// parameter (name and declared type) by value, so they have no reference
// back to the parameter that registered them.
//
// The built-in rules are registered through the Parameter methods; Add admits
// rule kinds this package does not know about.
type Rule[K comparable] interface {
	Check(h Access[K]) error
}

// requiredRule fails when the parameter is absent. It never mutates.
type requiredRule[K comparable] struct {
	name K
}

func (r requiredRule[K]) Check(h Access[K]) error {
	if !h.Contains(r.name) {
		return &MissingParameterError{Name: keyText(r.name)}
	}
	return nil
}

// rangeRule checks an inclusive [low, high] bound on a present parameter.
// An absent parameter passes: presence policy is composed separately from
// requiredRule or defaultRule.
type rangeRule[T any, K comparable] struct {
	name K
	low  T
	high T
}

func (r rangeRule[T, K]) Check(h Access[K]) error {
	if !h.Contains(r.name) {
		return nil
	}
	v, err := h.Data(r.name)
	if err != nil {
		return err
	}
	observed, err := Extract[T](v)
	if err != nil {
		if tm, ok := err.(*TypeMismatchError); ok {
			tm.Name = keyText(r.name)
		}
		return err
	}
	below, err := compareOrdered(observed, r.low)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", keyText(r.name), err)
	}
	above, _ := compareOrdered(observed, r.high)
	if below < 0 || above > 0 {
		return &OutOfRangeError{Name: keyText(r.name), Low: r.low, High: r.high, Observed: observed}
	}
	return nil
}

// defaultRule inserts a value when the parameter is absent. A present value
// is never overwritten.
type defaultRule[T any, K comparable] struct {
	name  K
	value T
}

func (r defaultRule[T, K]) Check(h Access[K]) error {
	if !h.Contains(r.name) {
		h.Insert(r.name, Box(r.value))
	}
	return nil
}

// typeRule checks that a present parameter holds the declared type. An
// absent parameter passes.
type typeRule[T any, K comparable] struct {
	name K
}

func (r typeRule[T, K]) Check(h Access[K]) error {
	if !h.Contains(r.name) {
		return nil
	}
	v, err := h.Data(r.name)
	if err != nil {
		return err
	}
	want := reflect.TypeFor[T]()
	if v.Identity() != want {
		return &TypeMismatchError{Name: keyText(r.name), Expected: want, Actual: v.Identity()}
	}
	return nil
}

// compareOrdered compares two values of the same static type, resolving the
// ordering through the value's kind. Types without an ordering (bool,
// slices, structs) report an error instead of a bogus comparison.
func compareOrdered(a, b any) (int, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float()), nil
	case reflect.String:
		return strings.Compare(va.String(), vb.String()), nil
	}
	return 0, fmt.Errorf("type %T does not support range checks", a)
}
