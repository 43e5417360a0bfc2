package parcel

import (
	"fmt"

	"parcelrelay/internal/pkg/errs"
)

// Type describes the handling category of a parcel's contents.
// Unlike Status it carries no transition rules; it is fixed at creation.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeNormal is the default category with no special handling.
	TypeNormal

	// TypeFragile marks contents that require careful handling.
	TypeFragile

	// TypeFood marks perishable contents.
	TypeFood
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "UNKNOWN",
		TypeNormal:  "NORMAL",
		TypeFragile: "FRAGILE",
		TypeFood:    "FOOD",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeNormal:  "NORMAL",
		TypeFragile: "FRAGILE",
		TypeFood:    "FOOD",
	}
}

// TypeFromString parses the persisted string form of a parcel type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"type is invalid", fmt.Errorf("%q is not a valid parcel type", s))
}

// Validate checks that the Type is one of the valid stored values.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"type is invalid", fmt.Errorf("%d is not a valid parcel type", t))
	}
	return nil
}

// String returns the persisted string form of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
