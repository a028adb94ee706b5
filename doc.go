// File: paramstore/doc.go

// Package paramstore provides typed, hierarchical parameter storage with
// deferred validation for configuration-time use: reading a simulation or
// application input deck, filling in defaults, and rejecting bad values
// before any real work starts.
//
// Building blocks:
//   - Value: a type-erased box with a precise type identity; extraction with
//     the wrong type fails, never converts.
//   - Store2/Store3: multi-key stores mapping an ordered key tuple to a
//     Value, with deferred queries run lazily in one batch.
//   - Handler: a flat name-to-Value map, loadable from TOML files and
//     command-line arguments, decodable into structs.
//   - Controller/Parameter: per-parameter rule chains (required, range,
//     default fill, type check) validated against a Handler in one pass.
//   - Printer: an open rendering registry for type-erased values.
//   - Registry: construct-by-name builders for polymorphic families.
//
// Quick start:
//
//	ctrl := paramstore.NewController[string]()
//	paramstore.Insert[int64](ctrl, "solver.max_iterations").Required().Range(1, 100000)
//	paramstore.Insert[float64](ctrl, "solver.tolerance").Default(1e-8)
//
//	h, err := paramstore.Load("input.toml", os.Args[1:])
//	if err != nil && !errors.Is(err, paramstore.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//	if err := ctrl.Check(h); err != nil {
//	    log.Fatal(err)
//	}
//
// Failure is always fast and always propagated: nothing is recovered,
// retried, or logged inside the package. Every failure carries a typed error
// (KeyNotFoundError, TypeMismatchError, MissingParameterError,
// OutOfRangeError) matchable with errors.Is.
//
// The structures here are single-owner and configuration-time only; they are
// not safe for concurrent mutation.
package paramstore
