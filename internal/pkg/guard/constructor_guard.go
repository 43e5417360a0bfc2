// Package guard implements the constructor-guard pattern used by domain value
// objects, aggregates, and commands to reject zero-value instances that were
// never run through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard is
// validated with a nil error. It guarantees validation still fails with a
// meaningful message when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its designated
// constructor. Embedding a ConstructorGuard in a struct lets Validate methods
// distinguish properly constructed instances from zero values, so invariants
// established in the constructor cannot be bypassed by direct struct literals.
//
// The zero value of ConstructorGuard always fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as constructed.
// Call it from the object's constructor and store the result in the guard field.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
