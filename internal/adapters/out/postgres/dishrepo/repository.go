package dishrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB, tracker aggregateTracker) *GormDishRepository {
	return &GormDishRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dish to the catalog.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dish by ID.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the dishes with the given identifiers. If any of the
// requested dishes does not exist the whole call fails with an object not
// found error naming the first missing one.
func (r *GormDishRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*dish.Dish, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = true
	}
	for _, id := range ids {
		if !found[id.Bytes()] {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}

	return dishes, nil
}
