// Package vector provides dense float64 vectors: size-specialized small
// vectors (Vec1 to Vec4), an arbitrary-length Dense vector, and zero-copy
// views (SubVector, Joined) over either, all behind the Vector interface.
//
// # Operation families
//
// Every mutating operation carries an InPlace suffix, mutates its first
// argument and returns it:
//
//	v := vector.Of(1, 2, 3)
//	vector.AddInPlace(v, vector.Of(1, 1, 1)) // v is now [2 3 4]
//
// The unsuffixed operation is the pure counterpart. It clones the primary
// operand, applies the in-place operation to the clone and returns the clone,
// so inputs are never mutated and results never alias them:
//
//	w, _ := vector.Add(v, vector.Of(1, 1, 1)) // v unchanged
//
// Plus, Minus, Times and Divide fold one or more operands strictly left to
// right into a clone of the first.
//
// # Views
//
// Subvector and Join return views that read and write through to their
// parents. A view holds a plain reference to its parent; the parent must stay
// in use for as long as any view of it does.
//
// # Conversion
//
// Convert turns raw slices, iterables, numeric collections and existing
// vectors into an owned vector. New input kinds plug in through
// RegisterConverter without changing call sites.
//
// # Concurrency
//
// Operations are synchronous and allocation-light. A vector and every view
// aliasing it must not be used from more than one goroutine at a time without
// external synchronization.
package vector
