package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// Update stores name, email and password hash of an existing user.
	Update(ctx context.Context, user model.User) (*model.User, error)
}
