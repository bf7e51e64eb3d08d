package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrTakeOrderCommandIsNotConstructed = errors.New(
		"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
	)
)

// TakeOrderCommand represents a courier claiming an order.
//
// The courier reports its current position as a free-form address or a
// "lat,lon" pair. It may be empty, in which case the courier's last stored
// position is used.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	courierID       kernel.UUID
	courierLocation string

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command for a courier to claim an order.
func NewTakeOrderCommand(orderID kernel.UUID, courierID kernel.UUID,
	courierLocation string) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{
		courierLocation: courierLocation,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the claiming courier.
func (c TakeOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// CourierLocation returns the courier's reported position,
// or an empty string if none was supplied.
func (c TakeOrderCommand) CourierLocation() string {
	return c.courierLocation
}

func (c *TakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TakeOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
