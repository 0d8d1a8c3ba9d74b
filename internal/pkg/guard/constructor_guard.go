// Package guard provides the ConstructorGuard pattern used to ensure that commands,
// queries, and value objects are only created through their designated constructor
// functions. A zero-value struct fails validation, which prevents handlers from
// operating on objects that bypassed construction-time checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied. Validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed objects from zero values.
//
// Example:
//
//	type LogTemperatureCommand struct {
//	    shipmentID kernel.TrackingID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewLogTemperatureCommand(...) (LogTemperatureCommand, error) {
//	    cmd := LogTemperatureCommand{guard: guard.NewConstructorGuard()}
//	    ...
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built via its constructor, otherwise the
// supplied validation error (or ErrDefaultConstructorGuard when that is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
