// Package dishrepo persists the dish catalog into the dishes table.
package dishrepo

import (
	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DishDTO is the database representation of a dish.
// Category is indexed because the menu listing orders by it.
type DishDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	Price           float64   `gorm:"not null"`
	Weight          float64   `gorm:"not null"`
	Category        string    `gorm:"not null;index"`
	PrepTimeMinutes int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "dishes".
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(aggregate *dish.Dish) DishDTO {
	return DishDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Price:           aggregate.Price(),
		Weight:          aggregate.Weight(),
		Category:        aggregate.Category(),
		PrepTimeMinutes: aggregate.PrepTimeMinutes(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return dish.RestoreDish(id, dto.Name, dto.Price, dto.Weight, dto.Category, dto.PrepTimeMinutes)
}
