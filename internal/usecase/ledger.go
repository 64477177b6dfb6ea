package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

// NotificationQueue accepts status changes for background delivery.
// Enqueue must not block; it reports false when the change was dropped.
type NotificationQueue interface {
	Enqueue(change model.StatusChange) bool
}

// LedgerUseCase implements the order ledger: per-owner selections of catalog
// services together with their fulfilment status.
type LedgerUseCase struct {
	ledger   repository.LedgerRepository
	services repository.ServiceRepository
	users    repository.UserRepository
	queue    NotificationQueue
	logger   *slog.Logger
	now      func() time.Time
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(
	ledger repository.LedgerRepository,
	services repository.ServiceRepository,
	users repository.UserRepository,
	queue NotificationQueue,
	logger *slog.Logger,
) *LedgerUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerUseCase{
		ledger:   ledger,
		services: services,
		users:    users,
		queue:    queue,
		logger:   logger,
		now:      time.Now,
	}
}

// AddOrUpdateSelection records that ownerID wants the service on planID.
// An existing selection for the same service keeps its id and status and only
// switches plan.
func (u *LedgerUseCase) AddOrUpdateSelection(ctx context.Context, ownerID uuid.UUID, rawServiceID, planID string) (*model.SelectionResult, error) {
	serviceID, err := ParseID(rawServiceID)
	if err != nil {
		return nil, err
	}
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return nil, fmt.Errorf("%w: plan id is required", domainErrors.ErrInvalidPlan)
	}

	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if _, _, ok := svc.FindPlan(planID); !ok {
		return nil, fmt.Errorf("%w: %q is not offered by service %s", domainErrors.ErrInvalidPlan, planID, serviceID)
	}

	entry, selection, outcome, err := u.ledger.UpsertSelection(ctx, ownerID, serviceID, planID)
	if err != nil {
		return nil, err
	}

	resolved := u.resolve(ctx, []model.LedgerEntry{*entry})
	res := &model.SelectionResult{Entry: &resolved[0], Outcome: outcome}
	for i := range res.Entry.Selections {
		if res.Entry.Selections[i].ID == selection.ID {
			res.Selection = &res.Entry.Selections[i]
			break
		}
	}
	if res.Selection == nil {
		// The selection was changed again between the upsert and the reload.
		tier, plan, _ := svc.FindPlan(selection.PlanID)
		res.Selection = &model.ResolvedSelection{Selection: *selection, Service: svc, Tier: tier, Plan: plan}
	}
	return res, nil
}

// ListSelections returns the entries visible to viewer, newest first.
// Administrators see every entry.
func (u *LedgerUseCase) ListSelections(ctx context.Context, viewer model.Principal) ([]model.ResolvedEntry, error) {
	var (
		entries []model.LedgerEntry
		err     error
	)
	if viewer.Admin {
		entries, err = u.ledger.ListAll(ctx)
	} else {
		entries, err = u.ledger.ListByOwner(ctx, viewer.UserID)
	}
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, entries), nil
}

// UpdateStatus assigns a settable status to a selection. Completing a
// selection removes it; the result then only reports the removal.
func (u *LedgerUseCase) UpdateStatus(ctx context.Context, rawSelectionID, rawStatus string) (*model.StatusUpdateResult, error) {
	status := model.SelectionStatus(strings.TrimSpace(rawStatus))
	if !status.Settable() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, rawStatus)
	}
	selectionID, err := ParseID(rawSelectionID)
	if err != nil {
		return nil, err
	}

	var entry *model.LedgerEntry
	if status == model.SelectionStatusCompleted {
		entry, err = u.ledger.CompleteSelection(ctx, selectionID)
	} else {
		entry, err = u.ledger.SetSelectionStatus(ctx, selectionID, status)
	}
	if err != nil {
		return nil, err
	}

	u.notify(ctx, entry.OwnerID, selectionID, status)

	if status == model.SelectionStatusCompleted {
		return &model.StatusUpdateResult{Removed: true}, nil
	}
	resolved := u.resolve(ctx, []model.LedgerEntry{*entry})
	return &model.StatusUpdateResult{Entry: &resolved[0]}, nil
}

func (u *LedgerUseCase) notify(ctx context.Context, ownerID, selectionID uuid.UUID, status model.SelectionStatus) {
	if u.queue == nil {
		return
	}
	owner, err := u.users.GetByID(ctx, ownerID)
	if err != nil {
		u.logger.Warn("skip status notification: owner lookup failed",
			slog.String("selection_id", selectionID.String()),
			slog.String("owner_id", ownerID.String()),
			slog.Any("error", err),
		)
		return
	}
	change := model.StatusChange{
		SelectionID: selectionID,
		Email:       owner.Email,
		Name:        owner.Name,
		Status:      status,
		ChangedAt:   u.now().UTC(),
	}
	if !u.queue.Enqueue(change) {
		u.logger.Warn("status notification dropped",
			slog.String("selection_id", selectionID.String()),
			slog.String("status", string(status)),
		)
	}
}

// resolve joins entries with their owners and catalog data. Lookups that fail
// degrade the affected fields instead of failing the whole result.
func (u *LedgerUseCase) resolve(ctx context.Context, entries []model.LedgerEntry) []model.ResolvedEntry {
	catalog := u.loadServices(ctx, entries)
	owners := newOwnerCache(u.users, u.logger, "resolve selections")

	out := make([]model.ResolvedEntry, 0, len(entries))
	for _, entry := range entries {
		resolved := model.ResolvedEntry{
			ID:         entry.ID,
			Owner:      owners.get(ctx, entry.OwnerID),
			Selections: make([]model.ResolvedSelection, 0, len(entry.Selections)),
			CreatedAt:  entry.CreatedAt,
			UpdatedAt:  entry.UpdatedAt,
		}
		for _, sel := range entry.Selections {
			rs := model.ResolvedSelection{Selection: sel}
			if svc, ok := catalog[sel.ServiceID]; ok {
				rs.Service = svc
				if tier, plan, found := svc.FindPlan(sel.PlanID); found {
					rs.Tier = tier
					rs.Plan = plan
				}
			}
			resolved.Selections = append(resolved.Selections, rs)
		}
		out = append(out, resolved)
	}
	return out
}

func (u *LedgerUseCase) loadServices(ctx context.Context, entries []model.LedgerEntry) map[uuid.UUID]*model.Service {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, entry := range entries {
		for _, sel := range entry.Selections {
			if _, ok := seen[sel.ServiceID]; ok {
				continue
			}
			seen[sel.ServiceID] = struct{}{}
			ids = append(ids, sel.ServiceID)
		}
	}

	catalog := make(map[uuid.UUID]*model.Service, len(ids))
	if len(ids) == 0 {
		return catalog
	}
	services, err := u.services.ListByIDs(ctx, ids)
	if err != nil {
		u.logger.Error("resolve selections: load services", slog.Any("error", err))
		return catalog
	}
	for i := range services {
		catalog[services[i].ID] = &services[i]
	}
	return catalog
}
