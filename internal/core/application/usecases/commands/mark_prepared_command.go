package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrMarkPreparedCommandIsNotConstructed = errors.New(
		"MarkPreparedCommand must be created via NewMarkPreparedCommand constructor",
	)
)

// MarkPreparedCommand represents a kitchen worker reporting an order as
// finished. The worker's identity is recorded on the order.
type MarkPreparedCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	kitchenWorkerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPreparedCommand creates a command to mark an order prepared.
func NewMarkPreparedCommand(orderID kernel.UUID, kitchenWorkerID kernel.UUID) (MarkPreparedCommand, error) {
	cmd := MarkPreparedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKitchenWorkerID(kitchenWorkerID),
	); err != nil {
		return MarkPreparedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPreparedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPreparedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being prepared.
func (c MarkPreparedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// KitchenWorkerID returns the identifier of the reporting kitchen worker.
func (c MarkPreparedCommand) KitchenWorkerID() kernel.UUID {
	return c.kitchenWorkerID
}

func (c *MarkPreparedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkPreparedCommand) setKitchenWorkerID(kitchenWorkerID kernel.UUID) error {
	if err := kitchenWorkerID.Validate(); err != nil {
		return err
	}

	c.kitchenWorkerID = kitchenWorkerID
	return nil
}
