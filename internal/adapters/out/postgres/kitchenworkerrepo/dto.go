// Package kitchenworkerrepo persists kitchen worker accounts into the
// kitchen_workers table.
package kitchenworkerrepo

import (
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// KitchenWorkerDTO is the database representation of a kitchen worker account.
type KitchenWorkerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "kitchen_workers".
func (KitchenWorkerDTO) TableName() string {
	return "kitchen_workers"
}

func fromDomain(aggregate *account.KitchenWorker) KitchenWorkerDTO {
	return KitchenWorkerDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto KitchenWorkerDTO) (*account.KitchenWorker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreKitchenWorker(id, dto.Name)
}
