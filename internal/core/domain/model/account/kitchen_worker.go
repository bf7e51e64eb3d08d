package account

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for kitchen worker operations.
var (
	// ErrKitchenWorkerIsNotConstructed is returned when using an improperly initialized KitchenWorker.
	ErrKitchenWorkerIsNotConstructed = errors.New("KitchenWorker must be created via NewKitchenWorker constructor")
	// ErrKitchenWorkerNameIsRequired is returned when attempting to create a kitchen worker without a name.
	ErrKitchenWorkerNameIsRequired = errs.NewValueIsRequiredError("name")
)

// KitchenWorker prepares orders. Its identity is recorded on the order it
// finished, which is all the workflow needs from it.
type KitchenWorker struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewKitchenWorker creates a kitchen worker.
func NewKitchenWorker(id kernel.UUID, name string) (*KitchenWorker, error) {
	worker := &KitchenWorker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		worker.setID(id),
		worker.setName(name),
	); err != nil {
		return nil, err
	}

	return worker, nil
}

// RestoreKitchenWorker reconstructs a KitchenWorker from persistent storage.
func RestoreKitchenWorker(id kernel.UUID, name string) (*KitchenWorker, error) {
	return NewKitchenWorker(id, name)
}

// Validate ensures the KitchenWorker was created through a constructor.
func (w *KitchenWorker) Validate() error {
	if w == nil || w.guard.Validate(ErrKitchenWorkerIsNotConstructed) != nil {
		return ErrKitchenWorkerIsNotConstructed
	}
	return nil
}

// ID returns the kitchen worker's unique identifier.
func (w *KitchenWorker) ID() kernel.UUID {
	return w.id
}

// Name returns the kitchen worker's display name.
func (w *KitchenWorker) Name() string {
	return w.name
}

func (w *KitchenWorker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	w.id = id
	return nil
}

func (w *KitchenWorker) setName(name string) error {
	if name == "" {
		return ErrKitchenWorkerNameIsRequired
	}
	w.name = name
	return nil
}
