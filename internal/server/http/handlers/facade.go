package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (model.Principal, error)
}

// AccountFacade edits the signed-in user's account.
type AccountFacade interface {
	UpdateAccount(ctx context.Context, userID uuid.UUID, change model.AccountChange) (*model.User, error)
}

// CatalogFacade exposes service catalog management.
type CatalogFacade interface {
	CreateService(ctx context.Context, svc model.Service) (*model.Service, error)
	UpdateService(ctx context.Context, id string, svc model.Service) (*model.Service, error)
	DeleteService(ctx context.Context, id string) error
	Service(ctx context.Context, id string) (*model.Service, error)
	Services(ctx context.Context) ([]model.Service, error)
}

// LedgerFacade exposes the order ledger.
type LedgerFacade interface {
	SelectService(ctx context.Context, ownerID uuid.UUID, serviceID, planID string) (*model.SelectionResult, error)
	Selections(ctx context.Context, viewer model.Principal) ([]model.ResolvedEntry, error)
	UpdateSelectionStatus(ctx context.Context, selectionID, status string) (*model.StatusUpdateResult, error)
}

// BlogFacade exposes blog publishing.
type BlogFacade interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, post model.BlogPost) (*model.ResolvedPost, error)
	UpdatePost(ctx context.Context, id string, change model.BlogPostChange) (*model.ResolvedPost, error)
	DeletePost(ctx context.Context, id string) error
	Post(ctx context.Context, id string) (*model.ResolvedPost, error)
	Posts(ctx context.Context, page, pageSize int) (*model.BlogPage, error)
	LatestPosts(ctx context.Context) ([]model.ResolvedPost, error)
}

// ContactFacade exposes the contact form inbox.
type ContactFacade interface {
	SubmitContact(ctx context.Context, authorID uuid.UUID, msg model.ContactMessage) (*model.ContactMessage, error)
	Contacts(ctx context.Context) ([]model.ContactMessage, error)
}

// ReviewFacade exposes platform reviews.
type ReviewFacade interface {
	SubmitReview(ctx context.Context, authorID uuid.UUID, review model.Review) (*model.ReviewSummary, bool, error)
	Reviews(ctx context.Context) (*model.ReviewSummary, error)
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// BookingFacade aggregates the full set of operations used across handlers.
type BookingFacade interface {
	AuthFacade
	AccountFacade
	CatalogFacade
	LedgerFacade
	BlogFacade
	ContactFacade
	ReviewFacade
	HealthFacade
}
