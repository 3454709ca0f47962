// Package kernel provides core domain primitives shared by every aggregate
// in the delivery-partner domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: an exact-decimal, non-negative monetary amount
//   - GeoPoint: a validated geographic coordinate pair
//
// These primitives enforce domain invariants at construction time so that
// aggregates built from them are always in a valid state. All of them are
// immutable and safe for concurrent use.
package kernel
