// Package kernel contains the shared value objects of the cold-chain domain.
//
// Principal is an opaque, already-authenticated caller identity supplied by the
// execution environment; the core never verifies identities itself. TrackingID is
// the bounded-length identifier under which a shipment is registered. Both are
// immutable value objects that can only be obtained through their constructor
// functions, mirroring the validation-on-construction style used across the
// domain model.
package kernel
