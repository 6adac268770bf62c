package health

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error

	ListByAnimal(ctx context.Context, animalID string) ([]Record, error)
	ListByOwner(ctx context.Context, ownerUsername string) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}
