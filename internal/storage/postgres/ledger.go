package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const (
	entryColumns     = `id, owner_id, created_at, updated_at`
	selectionColumns = `id, entry_id, service_id, plan_id, status, created_at`
)

// UpsertSelection serializes writers of the same owner on the entry row, so
// concurrent requests for one (owner, service) pair converge on a single
// selection carrying the plan of the last writer.
func (r *ledgerRepository) UpsertSelection(ctx context.Context, ownerID, serviceID uuid.UUID, planID string) (*model.LedgerEntry, *model.Selection, model.SelectionOutcome, error) {
	const (
		ensureEntry = `INSERT INTO ledger_entries (id, owner_id) VALUES ($1, $2)
                       ON CONFLICT (owner_id) DO UPDATE SET owner_id = EXCLUDED.owner_id
                       RETURNING id`
		lockSelection = `SELECT id, plan_id FROM selections WHERE entry_id=$1 AND service_id=$2 FOR UPDATE`
		insertSel     = `INSERT INTO selections (id, entry_id, service_id, plan_id, status) VALUES ($1, $2, $3, $4, $5)`
		updatePlan    = `UPDATE selections SET plan_id=$1 WHERE id=$2`
		touchEntry    = `UPDATE ledger_entries SET updated_at=NOW() WHERE id=$1`
	)

	var (
		entry       *model.LedgerEntry
		selectionID uuid.UUID
		outcome     model.SelectionOutcome
	)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var entryID uuid.UUID
		if err := tx.QueryRow(ctx, ensureEntry, newID(), ownerID).Scan(&entryID); err != nil {
			return err
		}

		var currentPlan string
		err := tx.QueryRow(ctx, lockSelection, entryID, serviceID).Scan(&selectionID, &currentPlan)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			selectionID = newID()
			if _, err := tx.Exec(ctx, insertSel, selectionID, entryID, serviceID, planID, model.SelectionStatusPending); err != nil {
				return err
			}
			outcome = model.SelectionCreated
		case err != nil:
			return err
		case currentPlan == planID:
			outcome = model.SelectionUnchanged
		default:
			if _, err := tx.Exec(ctx, updatePlan, planID, selectionID); err != nil {
				return err
			}
			outcome = model.SelectionUpdated
		}

		if outcome != model.SelectionUnchanged {
			if _, err := tx.Exec(ctx, touchEntry, entryID); err != nil {
				return err
			}
		}

		entry, err = loadEntry(ctx, tx, entryID)
		return err
	})
	if err != nil {
		return nil, nil, "", err
	}

	selection, ok := entry.Selection(selectionID)
	if !ok {
		return nil, nil, "", domainErrors.ErrNotFound
	}
	return entry, selection, outcome, nil
}

func (r *ledgerRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.LedgerEntry, error) {
	const query = `SELECT ` + entryColumns + ` FROM ledger_entries WHERE owner_id=$1 ORDER BY created_at DESC`
	return listEntries(ctx, r.storage.pool, query, ownerID)
}

func (r *ledgerRepository) ListAll(ctx context.Context) ([]model.LedgerEntry, error) {
	const query = `SELECT ` + entryColumns + ` FROM ledger_entries ORDER BY created_at DESC`
	return listEntries(ctx, r.storage.pool, query)
}

func (r *ledgerRepository) SetSelectionStatus(ctx context.Context, selectionID uuid.UUID, status model.SelectionStatus) (*model.LedgerEntry, error) {
	const (
		setStatus  = `UPDATE selections SET status=$1 WHERE id=$2 RETURNING entry_id`
		touchEntry = `UPDATE ledger_entries SET updated_at=NOW() WHERE id=$1`
	)

	var entry *model.LedgerEntry
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var entryID uuid.UUID
		if err := tx.QueryRow(ctx, setStatus, status, selectionID).Scan(&entryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if _, err := tx.Exec(ctx, touchEntry, entryID); err != nil {
			return err
		}
		var err error
		entry, err = loadEntry(ctx, tx, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CompleteSelection deletes the row in a single statement; a concurrent
// status update on the same selection blocks on the row lock and then
// observes no row.
func (r *ledgerRepository) CompleteSelection(ctx context.Context, selectionID uuid.UUID) (*model.LedgerEntry, error) {
	const (
		remove     = `DELETE FROM selections WHERE id=$1 RETURNING entry_id`
		touchEntry = `UPDATE ledger_entries SET updated_at=NOW() WHERE id=$1`
	)

	var entry *model.LedgerEntry
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var entryID uuid.UUID
		if err := tx.QueryRow(ctx, remove, selectionID).Scan(&entryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if _, err := tx.Exec(ctx, touchEntry, entryID); err != nil {
			return err
		}
		var err error
		entry, err = loadEntry(ctx, tx, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func loadEntry(ctx context.Context, q querier, entryID uuid.UUID) (*model.LedgerEntry, error) {
	const query = `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id=$1`
	entries, err := listEntries(ctx, q, query, entryID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return &entries[0], nil
}

func listEntries(ctx context.Context, q querier, query string, args ...any) ([]model.LedgerEntry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		entries []model.LedgerEntry
		ids     []uuid.UUID
	)
	for rows.Next() {
		var e model.LedgerEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(entries) == 0 {
		return entries, nil
	}
	if err := attachSelections(ctx, q, entries, ids); err != nil {
		return nil, err
	}
	return entries, nil
}

func attachSelections(ctx context.Context, q querier, entries []model.LedgerEntry, ids []uuid.UUID) error {
	const query = `SELECT ` + selectionColumns + ` FROM selections WHERE entry_id = ANY($1) ORDER BY seq`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int, len(entries))
	for i := range entries {
		index[entries[i].ID] = i
	}

	for rows.Next() {
		var (
			s       model.Selection
			entryID uuid.UUID
		)
		if err := rows.Scan(&s.ID, &entryID, &s.ServiceID, &s.PlanID, &s.Status, &s.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[entryID]; ok {
			entries[i].Selections = append(entries[i].Selections, s)
		}
	}
	return rows.Err()
}
