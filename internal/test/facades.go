package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CreateFn   func(context.Context, model.Service) (*model.Service, error)
	UpdateFn   func(context.Context, string, model.Service) (*model.Service, error)
	DeleteFn   func(context.Context, string) error
	ServiceFn  func(context.Context, string) (*model.Service, error)
	ServicesFn func(context.Context) ([]model.Service, error)
}

// CreateService echoes the service with a fresh id.
func (s CatalogFacadeStub) CreateService(ctx context.Context, svc model.Service) (*model.Service, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, svc)
	}
	svc.ID = uuid.New()
	return &svc, nil
}

// UpdateService echoes the service.
func (s CatalogFacadeStub) UpdateService(ctx context.Context, id string, svc model.Service) (*model.Service, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, svc)
	}
	return &svc, nil
}

// DeleteService succeeds unless overridden.
func (s CatalogFacadeStub) DeleteService(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Service returns an empty service unless overridden.
func (s CatalogFacadeStub) Service(ctx context.Context, id string) (*model.Service, error) {
	if s.ServiceFn != nil {
		return s.ServiceFn(ctx, id)
	}
	return &model.Service{ID: uuid.New()}, nil
}

// Services returns an empty catalog unless overridden.
func (s CatalogFacadeStub) Services(ctx context.Context) ([]model.Service, error) {
	if s.ServicesFn != nil {
		return s.ServicesFn(ctx)
	}
	return nil, nil
}

// LedgerFacadeStub simulates order ledger operations.
type LedgerFacadeStub struct {
	SelectFn     func(context.Context, uuid.UUID, string, string) (*model.SelectionResult, error)
	SelectionsFn func(context.Context, model.Principal) ([]model.ResolvedEntry, error)
	UpdateFn     func(context.Context, string, string) (*model.StatusUpdateResult, error)
}

// SelectService returns a created selection unless overridden.
func (s LedgerFacadeStub) SelectService(ctx context.Context, ownerID uuid.UUID, serviceID, planID string) (*model.SelectionResult, error) {
	if s.SelectFn != nil {
		return s.SelectFn(ctx, ownerID, serviceID, planID)
	}
	sel := model.ResolvedSelection{Selection: model.Selection{ID: uuid.New(), PlanID: planID, Status: model.SelectionStatusPending}}
	entry := model.ResolvedEntry{ID: uuid.New(), Owner: model.Owner{ID: ownerID}, Selections: []model.ResolvedSelection{sel}}
	return &model.SelectionResult{Entry: &entry, Selection: &entry.Selections[0], Outcome: model.SelectionCreated}, nil
}

// Selections returns no entries unless overridden.
func (s LedgerFacadeStub) Selections(ctx context.Context, viewer model.Principal) ([]model.ResolvedEntry, error) {
	if s.SelectionsFn != nil {
		return s.SelectionsFn(ctx, viewer)
	}
	return nil, nil
}

// UpdateSelectionStatus reports removal unless overridden.
func (s LedgerFacadeStub) UpdateSelectionStatus(ctx context.Context, selectionID, status string) (*model.StatusUpdateResult, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, selectionID, status)
	}
	return &model.StatusUpdateResult{Removed: true}, nil
}

// HealthFacadeStub reports store health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// BookingFacadeStub aggregates facade dependencies for HTTP layer tests.
type BookingFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	LedgerFacadeStub
	ContentFacadeStub
	HealthFacadeStub
}

// NotifierStub records delivered status changes.
type NotifierStub struct {
	mu       sync.Mutex
	Changes  []model.StatusChange
	NotifyFn func(context.Context, model.StatusChange) error
	Closed   bool
}

// NotifyStatusChange records change and delegates to override.
func (n *NotifierStub) NotifyStatusChange(ctx context.Context, change model.StatusChange) error {
	n.mu.Lock()
	n.Changes = append(n.Changes, change)
	fn := n.NotifyFn
	n.mu.Unlock()
	if fn != nil {
		return fn(ctx, change)
	}
	return nil
}

// Delivered returns a snapshot of recorded changes.
func (n *NotifierStub) Delivered() []model.StatusChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.StatusChange(nil), n.Changes...)
}

// Close marks the notifier closed.
func (n *NotifierStub) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Closed = true
	return nil
}

// QueueStub collects enqueued status changes synchronously.
type QueueStub struct {
	mu      sync.Mutex
	Changes []model.StatusChange
	Reject  bool
}

// Enqueue records change unless configured to reject.
func (q *QueueStub) Enqueue(change model.StatusChange) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.Reject {
		return false
	}
	q.Changes = append(q.Changes, change)
	return true
}

// Enqueued returns a snapshot of recorded changes.
func (q *QueueStub) Enqueued() []model.StatusChange {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]model.StatusChange(nil), q.Changes...)
}
