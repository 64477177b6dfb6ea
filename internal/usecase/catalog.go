package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

// CatalogUseCase manages the service catalog.
type CatalogUseCase struct {
	services repository.ServiceRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(services repository.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services}
}

// Create validates and stores a new service.
func (u *CatalogUseCase) Create(ctx context.Context, svc model.Service) (*model.Service, error) {
	if err := NormalizeService(&svc); err != nil {
		return nil, err
	}
	svc.ID = uuid.New()
	return u.services.Create(ctx, svc)
}

// Update replaces every field of an existing service. A tier sent without a
// plan id keeps the id it already has, so selections on it still resolve.
func (u *CatalogUseCase) Update(ctx context.Context, rawID string, svc model.Service) (*model.Service, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	stored, err := u.services.GetByID(ctx, id)
	switch {
	case err == nil:
		inheritPlanIDs(&svc, stored)
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}
	if err := NormalizeService(&svc); err != nil {
		return nil, err
	}
	svc.ID = id
	return u.services.Update(ctx, svc)
}

func inheritPlanIDs(svc *model.Service, stored *model.Service) {
	for tier, plan := range svc.PricingPlans {
		if strings.TrimSpace(plan.PlanID) != "" {
			continue
		}
		if prev, ok := stored.PricingPlans[tier]; ok {
			plan.PlanID = prev.PlanID
			svc.PricingPlans[tier] = plan
		}
	}
}

// Delete removes a service. Selections referencing it are kept.
func (u *CatalogUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}
	return u.services.Delete(ctx, id)
}

// Get returns a single service.
func (u *CatalogUseCase) Get(ctx context.Context, rawID string) (*model.Service, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return u.services.GetByID(ctx, id)
}

// List returns the catalog, newest first.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Service, error) {
	return u.services.List(ctx)
}
