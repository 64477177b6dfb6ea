package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// ServiceRepository describes persistence operations for the catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service model.Service) (*model.Service, error)
	Update(ctx context.Context, service model.Service) (*model.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
}
