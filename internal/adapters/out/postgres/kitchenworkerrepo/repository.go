package kitchenworkerrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormKitchenWorkerRepository implements ports.KitchenWorkerRepository using GORM.
type GormKitchenWorkerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormKitchenWorkerRepository creates a new GORM kitchen worker repository.
func NewGormKitchenWorkerRepository(db *gorm.DB, tracker aggregateTracker) *GormKitchenWorkerRepository {
	return &GormKitchenWorkerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new kitchen worker.
func (r *GormKitchenWorkerRepository) Add(ctx context.Context, aggregate *account.KitchenWorker) error {
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

// Get retrieves a kitchen worker by ID.
func (r *GormKitchenWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*account.KitchenWorker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto KitchenWorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kitchen worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
