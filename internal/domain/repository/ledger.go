package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// LedgerRepository persists per-owner ledger entries and their selections.
//
// Implementations keep at most one selection per (owner, service) pair and
// apply status mutations atomically, scoped by selection id.
type LedgerRepository interface {
	// UpsertSelection creates the owner's entry when needed, then either
	// appends a pending selection or replaces the plan of the existing one.
	UpsertSelection(ctx context.Context, ownerID, serviceID uuid.UUID, planID string) (*model.LedgerEntry, *model.Selection, model.SelectionOutcome, error)
	// ListByOwner returns the entries of ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.LedgerEntry, error)
	// ListAll returns every entry, newest first.
	ListAll(ctx context.Context) ([]model.LedgerEntry, error)
	// SetSelectionStatus assigns status and returns the updated entry.
	SetSelectionStatus(ctx context.Context, selectionID uuid.UUID, status model.SelectionStatus) (*model.LedgerEntry, error)
	// CompleteSelection marks the selection completed and removes it in one
	// mutation. The returned entry no longer contains the selection.
	CompleteSelection(ctx context.Context, selectionID uuid.UUID) (*model.LedgerEntry, error)
}
