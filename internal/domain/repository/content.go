package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// BlogRepository persists blog posts.
type BlogRepository interface {
	Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error)
	Update(ctx context.Context, post model.BlogPost) (*model.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	// List returns up to limit posts after skipping offset, newest first,
	// together with the total number of posts.
	List(ctx context.Context, offset, limit int) ([]model.BlogPost, int, error)
}

// ContactRepository persists contact form messages.
type ContactRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error)
	// List returns every message, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
}

// ReviewRepository persists reviews, one per author.
type ReviewRepository interface {
	// Upsert stores the author's review, replacing rating and comment of an
	// existing one. created reports whether a new review was inserted.
	Upsert(ctx context.Context, review model.Review) (stored *model.Review, created bool, err error)
	// List returns every review, newest first.
	List(ctx context.Context) ([]model.Review, error)
}
