package commands

import (
	"errors"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand represents a courier's request to mark their claimed
// order as delivered. Only the order's current owner may finish it, and an
// order can be finished at most once.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command for a courier to finish an order.
// Validates both identifiers. Returns an error if either is invalid.
func NewFinishOrderCommand(orderID kernel.UUID, courierID kernel.UUID) (FinishOrderCommand, error) {
	finishCommand := FinishOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		finishCommand.setOrderID(orderID),
		finishCommand.setCourierID(courierID),
	); err != nil {
		return FinishOrderCommand{}, err
	}

	return finishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinishOrderCommandIsNotConstructed if validation fails.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being finished.
func (c FinishOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the account attempting to finish the order.
func (c FinishOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *FinishOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinishOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
