package parcel

import (
	"fmt"

	"parcelrelay/internal/pkg/errs"
)

// Status represents the delivery state of a parcel.
// It implements a monotonic state machine: status only ever advances and never
// regresses, so a delivered parcel can never reappear as awaiting delivery.
//
// State transitions:
//
//	AwaitingDelivery ──> InDelivery ──> Delivered
//
// The stored parcel status mirrors the classification of the parcel's live
// order: an unclaimed order means AwaitingDelivery, a claimed order means
// InDelivery, a finished order means Delivered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAwaitingDelivery is the initial status: the parcel's order has not
	// been claimed by any courier yet.
	StatusAwaitingDelivery

	// StatusInDelivery indicates a courier has claimed the parcel's order and
	// the parcel is on its way.
	StatusInDelivery

	// StatusDelivered indicates the parcel reached its destination.
	// This is a final state with no further transitions allowed.
	StatusDelivered
)

// getStatusStrings returns the persisted string form of each status value.
// The strings match the enum values of the relational schema.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "UNKNOWN",
		StatusAwaitingDelivery: "AWAITING_DELIVERY",
		StatusInDelivery:       "IN_DELIVERY",
		StatusDelivered:        "DELIVERED",
	}
}

// getValidStatusStrings returns only the statuses a stored parcel may carry.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAwaitingDelivery: "AWAITING_DELIVERY",
		StatusInDelivery:       "IN_DELIVERY",
		StatusDelivered:        "DELIVERED",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for any string that is not a valid stored status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks that the Status is one of the valid stored values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid parcel status", s))
	}
	return nil
}

// String returns the persisted string form of the status.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// BeginDelivery transitions the status to InDelivery.
//
// Valid transitions:
//   - AwaitingDelivery -> InDelivery
//
// Any other source status is rejected: a parcel already in delivery or
// delivered cannot start delivery again.
func (s Status) BeginDelivery() (Status, error) {
	if s != StatusAwaitingDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to begin delivery", s.String()),
		)
	}

	return StatusInDelivery, nil
}

// CompleteDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - InDelivery -> Delivered
//
// A parcel that was never picked up or is already delivered cannot complete.
func (s Status) CompleteDelivery() (Status, error) {
	if s != StatusInDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete delivery", s.String()),
		)
	}

	return StatusDelivered, nil
}

// CanAdvanceTo reports whether moving from s to target only goes forward.
// Used by the reconciliation path, which may fast-forward a lagging parcel
// status but must never regress one.
func (s Status) CanAdvanceTo(target Status) bool {
	if target.Validate() != nil {
		return false
	}
	return target > s
}
