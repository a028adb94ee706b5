// File: paramstore/errors.go
package paramstore

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for use with errors.Is. The structured error types below
// carry the failure details and match their sentinel.
var (
	// ErrKeyNotFound indicates an absent key along a store path or in a handler.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch indicates a typed extraction against a value of a different type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingParameter indicates a required parameter absent from the handler.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrOutOfRange indicates a parameter value outside its inclusive bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownType indicates a value type with no registered render function.
	ErrUnknownType = errors.New("unknown type")

	// ErrNotRegistered indicates a builder name unknown to a registry.
	ErrNotRegistered = errors.New("name not registered")

	// ErrConfigNotFound indicates the parameter file does not exist.
	// LoadFile returns it so callers can proceed with defaults.
	ErrConfigNotFound = errors.New("configuration file not found")
)

// KeyNotFoundError reports the first absent key along a lookup path.
// Position is the zero-based index of the failing segment so callers can
// distinguish which part of a multi-key path was missing.
type KeyNotFoundError struct {
	Position int
	Key      string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found (path position %d)", e.Key, e.Position)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// TypeMismatchError reports a typed read whose requested type differs from
// the stored type identity. Name is empty for bare Value extractions and set
// when the failure concerns a named parameter.
type TypeMismatchError struct {
	Name     string
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("parameter %q holds %v, not %v", e.Name, e.Actual, e.Expected)
	}
	return fmt.Sprintf("value holds %v, not %v", e.Actual, e.Expected)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// MissingParameterError reports a required parameter absent from the handler.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("parameter %q is missing", e.Name)
}

func (e *MissingParameterError) Is(target error) bool { return target == ErrMissingParameter }

// OutOfRangeError reports a parameter value outside its inclusive bounds.
type OutOfRangeError struct {
	Name     string
	Low      any
	High     any
	Observed any
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("parameter %q out of range: %v not in [%v, %v]", e.Name, e.Observed, e.Low, e.High)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// UnknownTypeError reports a value type the printer has no render function for.
type UnknownTypeError struct {
	Type reflect.Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no render function registered for type %v", e.Type)
}

func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// NotRegisteredError reports a builder name unknown to a registry.
type NotRegisteredError struct {
	Name string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("%q is not a registered builder", e.Name)
}

func (e *NotRegisteredError) Is(target error) bool { return target == ErrNotRegistered }
