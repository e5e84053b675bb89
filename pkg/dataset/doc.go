// Package dataset defines how the validation engine addresses and probes the
// data under validation.
//
// A Key identifies a single field either by string name or by integer index,
// covering both map-shaped and positional datasets. An Accessor answers
// presence and value queries for Keys; MapAccessor and SliceAccessor adapt
// the two common in-memory shapes.
//
// The package performs no I/O and holds no state beyond the wrapped data, so
// accessors are as goroutine-safe as the data they wrap.
package dataset
