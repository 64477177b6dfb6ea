package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/usecase"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type BookingFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	ledger   *usecase.LedgerUseCase
	blog     *usecase.BlogUseCase
	contacts *usecase.ContactUseCase
	reviews  *usecase.ReviewUseCase
	health   HealthChecker
}

// FacadeParams lists the use cases the facade delegates to.
type FacadeParams struct {
	fx.In

	Auth     *usecase.AuthUseCase
	Catalog  *usecase.CatalogUseCase
	Ledger   *usecase.LedgerUseCase
	Blog     *usecase.BlogUseCase
	Contacts *usecase.ContactUseCase
	Reviews  *usecase.ReviewUseCase
	Health   HealthChecker
}

func NewBookingFacade(p FacadeParams) *BookingFacade {
	return &BookingFacade{
		auth:     p.Auth,
		catalog:  p.Catalog,
		ledger:   p.Ledger,
		blog:     p.Blog,
		contacts: p.Contacts,
		reviews:  p.Reviews,
		health:   p.Health,
	}
}

func (f *BookingFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *BookingFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *BookingFacade) ParseToken(token string) (model.Principal, error) {
	return f.auth.ParseToken(token)
}

func (f *BookingFacade) UpdateAccount(ctx context.Context, userID uuid.UUID, change model.AccountChange) (*model.User, error) {
	return f.auth.UpdateAccount(ctx, userID, change)
}

func (f *BookingFacade) CreateService(ctx context.Context, svc model.Service) (*model.Service, error) {
	return f.catalog.Create(ctx, svc)
}

func (f *BookingFacade) UpdateService(ctx context.Context, id string, svc model.Service) (*model.Service, error) {
	return f.catalog.Update(ctx, id, svc)
}

func (f *BookingFacade) DeleteService(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *BookingFacade) Service(ctx context.Context, id string) (*model.Service, error) {
	return f.catalog.Get(ctx, id)
}

func (f *BookingFacade) Services(ctx context.Context) ([]model.Service, error) {
	return f.catalog.List(ctx)
}

func (f *BookingFacade) SelectService(ctx context.Context, ownerID uuid.UUID, serviceID, planID string) (*model.SelectionResult, error) {
	return f.ledger.AddOrUpdateSelection(ctx, ownerID, serviceID, planID)
}

func (f *BookingFacade) Selections(ctx context.Context, viewer model.Principal) ([]model.ResolvedEntry, error) {
	return f.ledger.ListSelections(ctx, viewer)
}

func (f *BookingFacade) UpdateSelectionStatus(ctx context.Context, selectionID, status string) (*model.StatusUpdateResult, error) {
	return f.ledger.UpdateStatus(ctx, selectionID, status)
}

func (f *BookingFacade) CreatePost(ctx context.Context, authorID uuid.UUID, post model.BlogPost) (*model.ResolvedPost, error) {
	return f.blog.Create(ctx, authorID, post)
}

func (f *BookingFacade) UpdatePost(ctx context.Context, id string, change model.BlogPostChange) (*model.ResolvedPost, error) {
	return f.blog.Update(ctx, id, change)
}

func (f *BookingFacade) DeletePost(ctx context.Context, id string) error {
	return f.blog.Delete(ctx, id)
}

func (f *BookingFacade) Post(ctx context.Context, id string) (*model.ResolvedPost, error) {
	return f.blog.Get(ctx, id)
}

func (f *BookingFacade) Posts(ctx context.Context, page, pageSize int) (*model.BlogPage, error) {
	return f.blog.List(ctx, page, pageSize)
}

func (f *BookingFacade) LatestPosts(ctx context.Context) ([]model.ResolvedPost, error) {
	return f.blog.Latest(ctx)
}

func (f *BookingFacade) SubmitContact(ctx context.Context, authorID uuid.UUID, msg model.ContactMessage) (*model.ContactMessage, error) {
	return f.contacts.Submit(ctx, authorID, msg)
}

func (f *BookingFacade) Contacts(ctx context.Context) ([]model.ContactMessage, error) {
	return f.contacts.List(ctx)
}

func (f *BookingFacade) SubmitReview(ctx context.Context, authorID uuid.UUID, review model.Review) (*model.ReviewSummary, bool, error) {
	return f.reviews.Submit(ctx, authorID, review)
}

func (f *BookingFacade) Reviews(ctx context.Context) (*model.ReviewSummary, error) {
	return f.reviews.List(ctx)
}

func (f *BookingFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
