// Package customerrepo persists customer accounts into the customers table.
package customerrepo

import (
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the database representation of a customer account.
// Location is the free-form delivery address; empty means not set yet.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null"`
	Location string
	Balance  float64 `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *account.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Location: aggregate.Location(),
		Balance:  aggregate.Balance(),
	}
}

func toDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreCustomer(id, dto.Name, dto.Location, dto.Balance)
}
