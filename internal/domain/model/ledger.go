package model

import (
	"time"

	"github.com/google/uuid"
)

// SelectionStatus describes where a booked service is in fulfilment.
type SelectionStatus string

const (
	SelectionStatusPending    SelectionStatus = "pending"
	SelectionStatusProcessing SelectionStatus = "processing"
	SelectionStatusBooked     SelectionStatus = "Booked"
	SelectionStatusCompleted  SelectionStatus = "completed"
	SelectionStatusCancelled  SelectionStatus = "cancelled"
)

// Settable reports whether administrators may assign s.
// Pending is only ever assigned on creation.
func (s SelectionStatus) Settable() bool {
	switch s {
	case SelectionStatusProcessing, SelectionStatusBooked, SelectionStatusCompleted, SelectionStatusCancelled:
		return true
	default:
		return false
	}
}

// Selection is one service with a chosen plan inside a ledger entry.
type Selection struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	PlanID    string
	Status    SelectionStatus
	CreatedAt time.Time
}

// LedgerEntry holds every selection of a single owner in insertion order.
type LedgerEntry struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Selections []Selection
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Selection returns the selection with the given id.
func (e *LedgerEntry) Selection(id uuid.UUID) (*Selection, bool) {
	if e == nil {
		return nil, false
	}
	for i := range e.Selections {
		if e.Selections[i].ID == id {
			return &e.Selections[i], true
		}
	}
	return nil, false
}

// SelectionFor returns the selection referencing serviceID.
func (e *LedgerEntry) SelectionFor(serviceID uuid.UUID) (*Selection, bool) {
	if e == nil {
		return nil, false
	}
	for i := range e.Selections {
		if e.Selections[i].ServiceID == serviceID {
			return &e.Selections[i], true
		}
	}
	return nil, false
}

// SelectionOutcome tells what AddOrUpdateSelection did.
type SelectionOutcome string

const (
	SelectionCreated   SelectionOutcome = "created"
	SelectionUpdated   SelectionOutcome = "updated"
	SelectionUnchanged SelectionOutcome = "unchanged"
)

// ResolvedSelection is a selection joined with its catalog data.
// Service and Plan are nil when the reference no longer resolves.
type ResolvedSelection struct {
	Selection
	Service *Service
	Tier    PlanTier
	Plan    *PricingPlan
}

// ResolvedEntry is a ledger entry prepared for display.
type ResolvedEntry struct {
	ID         uuid.UUID
	Owner      Owner
	Selections []ResolvedSelection
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SelectionResult is returned by AddOrUpdateSelection.
type SelectionResult struct {
	Entry     *ResolvedEntry
	Selection *ResolvedSelection
	Outcome   SelectionOutcome
}

// StatusUpdateResult is returned by UpdateStatus.
type StatusUpdateResult struct {
	Removed bool
	Entry   *ResolvedEntry
}

// StatusChange is published to the customer after a status update.
type StatusChange struct {
	SelectionID uuid.UUID
	Email       string
	Name        string
	Status      SelectionStatus
	ChangedAt   time.Time
}
