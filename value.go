// File: paramstore/value.go
package paramstore

import (
	"reflect"
)

// Value is a type-erased box holding exactly one value together with its
// type identity. A Value never converts: extraction with any type other than
// the stored one fails with TypeMismatchError. Absence of a value is
// represented by a key not existing in the enclosing map, not by a Value in
// some empty state.
type Value struct {
	data any
	typ  reflect.Type
}

// Box stores v in a Value, remembering T as the type identity.
// The identity is taken from the type parameter, so boxing a nil interface
// or a typed nil pointer keeps a precise identity.
func Box[T any](v T) Value {
	return Value{data: v, typ: reflect.TypeFor[T]()}
}

// FromAny stores a dynamically typed value, taking the identity from the
// value's dynamic type. Used where values arrive untyped, e.g. decoded TOML
// leaves. FromAny(nil) yields a Value with a nil identity that fails every
// typed extraction.
func FromAny(v any) Value {
	return Value{data: v, typ: reflect.TypeOf(v)}
}

// Extract returns the contained value as T. It fails with TypeMismatchError
// when T differs from the stored identity; the stored bytes are never
// reinterpreted.
func Extract[T any](v Value) (T, error) {
	want := reflect.TypeFor[T]()
	if v.typ != want {
		var zero T
		return zero, &TypeMismatchError{Expected: want, Actual: v.typ}
	}
	return v.data.(T), nil
}

// Identity returns the comparable type token of the contained value.
// It is nil for the zero Value and for FromAny(nil).
func (v Value) Identity() reflect.Type { return v.typ }

// Raw returns the contained value with its dynamic type.
func (v Value) Raw() any { return v.data }
