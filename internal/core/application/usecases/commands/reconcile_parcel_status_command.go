package commands

import (
	"errors"

	"parcelrelay/internal/pkg/guard"
)

var ErrReconcileParcelStatusCommandIsNotConstructed = errors.New(
	"ReconcileParcelStatusCommand must be created via NewReconcileParcelStatusCommand constructor",
)

// ReconcileParcelStatusCommand triggers a repair sweep over parcels whose
// stored status lags behind what their live order implies. Command handlers
// keep the two in step transactionally, so lag normally means a row was
// touched outside the application; the sweep fast-forwards such parcels.
type ReconcileParcelStatusCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileParcelStatusCommand creates a new command to trigger a
// reconciliation sweep. This is a parameterless command.
func NewReconcileParcelStatusCommand() ReconcileParcelStatusCommand {
	return ReconcileParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileParcelStatusCommandIsNotConstructed if validation fails.
func (c *ReconcileParcelStatusCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcileParcelStatusCommandIsNotConstructed,
	)
}
