// Package core defines the shared types used across quicklog.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs attached to an entry.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once every handler has consumed
// it. The pool pre-allocates the Fields slice with capacity 8.
//
// Field stores numeric values in fixed-size slots (Int64, Float64) so
// that common types like int, bool and time.Time do not escape to the
// heap. The Any slot is the fallback for arbitrary values.
package core
