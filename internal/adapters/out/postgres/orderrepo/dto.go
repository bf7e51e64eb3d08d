// Package orderrepo persists order aggregates into the orders and
// order_lines tables and restores them back into domain objects.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate.
// Status and courier are indexed because courier feeds and claimable-order
// listings filter on them.
type OrderDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID             uuid.UUID  `gorm:"type:uuid;index"`
	Price                  float64    `gorm:"not null"`
	Weight                 float64    `gorm:"not null"`
	Address                string     `gorm:"not null"`
	Status                 int        `gorm:"index"`
	CourierID              *uuid.UUID `gorm:"type:uuid;index"`
	KitchenWorkerID        *uuid.UUID `gorm:"type:uuid"`
	TimeOfCreation         time.Time  `gorm:"not null"`
	ExpectedTimeOfDelivery *time.Time
	TimeOfDelivery         *time.Time
	Lines                  []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is the database representation of a single order line with the
// dish attributes snapshotted at checkout time.
type LineDTO struct {
	OrderID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity        int       `gorm:"not null"`
	UnitPrice       float64   `gorm:"not null"`
	UnitWeight      float64   `gorm:"not null"`
	PrepTimeMinutes int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var kitchenWorkerID *uuid.UUID
	if id := aggregate.KitchenWorkerID(); id != nil {
		raw := id.Bytes()
		kitchenWorkerID = &raw
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:         aggregate.ID().Bytes(),
			DishID:          line.DishID().Bytes(),
			Quantity:        line.Quantity(),
			UnitPrice:       line.UnitPrice(),
			UnitWeight:      line.UnitWeight(),
			PrepTimeMinutes: line.PrepTimeMinutes(),
		})
	}

	return OrderDTO{
		ID:                     aggregate.ID().Bytes(),
		CustomerID:             aggregate.CustomerID().Bytes(),
		Price:                  aggregate.Price(),
		Weight:                 aggregate.Weight(),
		Address:                aggregate.Address(),
		Status:                 int(aggregate.Status()),
		CourierID:              courierID,
		KitchenWorkerID:        kitchenWorkerID,
		TimeOfCreation:         aggregate.TimeOfCreation(),
		ExpectedTimeOfDelivery: aggregate.ExpectedTimeOfDelivery(),
		TimeOfDelivery:         aggregate.TimeOfDelivery(),
		Lines:                  lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := optionalUUID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	kitchenWorkerID, err := optionalUUID(dto.KitchenWorkerID)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		dishID, dishErr := kernel.UUIDFromBytes(lineDTO.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}

		line, lineErr := order.RestoreLine(
			dishID, lineDTO.Quantity, lineDTO.UnitPrice, lineDTO.UnitWeight, lineDTO.PrepTimeMinutes,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, customerID, dto.Address, lines, dto.Price, dto.Weight,
		order.Status(dto.Status), courierID, kitchenWorkerID,
		dto.TimeOfCreation, dto.ExpectedTimeOfDelivery, dto.TimeOfDelivery,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
