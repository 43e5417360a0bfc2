package order

import (
	"fmt"

	"parcelrelay/internal/pkg/errs"
)

// Phase represents the lifecycle state of an order. Unlike a stored status
// column, Phase is derived purely from the order's owner and finished-at
// fields, so it can never disagree with them.
//
// Phase transitions:
//
//	Unclaimed ──> Claimed ──> Finished
//
// Claiming is exclusive: at most one account ever moves an order out of
// Unclaimed, and Finished is terminal.
type Phase int

const (
	// PhaseUnknown represents an invalid or undefined phase.
	// This value (0) helps catch uninitialized Phase values.
	PhaseUnknown Phase = iota

	// PhaseUnclaimed is the initial phase: no courier owns the order yet.
	PhaseUnclaimed

	// PhaseClaimed indicates exactly one courier owns the order and the
	// delivery leg is in progress.
	PhaseClaimed

	// PhaseFinished indicates the leg is complete. This is a final phase with
	// no further transitions allowed.
	PhaseFinished
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:   "Unknown",
		PhaseUnclaimed: "Unclaimed",
		PhaseClaimed:   "Claimed",
		PhaseFinished:  "Finished",
	}
}

// String returns the human-readable name of the phase.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// ValidateClaim checks whether an order in this phase may be claimed, without
// performing the transition.
//
// Valid phase for claiming:
//   - Unclaimed
//
// Claimed and Finished orders are rejected: an order is claimable exactly once.
func (p Phase) ValidateClaim() error {
	if p != PhaseUnclaimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"phase is invalid",
			fmt.Errorf("%s is not a valid phase to claim", p.String()),
		)
	}
	return nil
}

// ValidateFinish checks whether an order in this phase may be finished,
// without performing the transition.
//
// Valid phase for finishing:
//   - Claimed
//
// Unclaimed orders must be claimed first; Finished orders are terminal.
func (p Phase) ValidateFinish() error {
	if p != PhaseClaimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"phase is invalid",
			fmt.Errorf("%s is not a valid phase to finish", p.String()),
		)
	}
	return nil
}

// Claim transitions the phase to Claimed.
//
// Valid transitions:
//   - Unclaimed -> Claimed
//
// Returns an error for any other source phase. Used by Order.Claim to guard
// the single-writer claim rule.
func (p Phase) Claim() (Phase, error) {
	if err := p.ValidateClaim(); err != nil {
		return 0, err
	}

	return PhaseClaimed, nil
}

// Finish transitions the phase to Finished.
//
// Valid transitions:
//   - Claimed -> Finished
//
// Returns an error for any other source phase. Finished is final.
func (p Phase) Finish() (Phase, error) {
	if err := p.ValidateFinish(); err != nil {
		return 0, err
	}

	return PhaseFinished, nil
}
