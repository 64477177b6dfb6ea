package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/juju/mgo/v3"
	"github.com/juju/mgo/v3/bson"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// upsertAttempts bounds retries when a concurrent writer wins the race for
// the same owner or (owner, service) pair.
const upsertAttempts = 3

func (r *ledgerRepository) UpsertSelection(ctx context.Context, ownerID, serviceID uuid.UUID, planID string) (*model.LedgerEntry, *model.Selection, model.SelectionOutcome, error) {
	c, done, err := r.storage.collection(ctx, ledgerC)
	if err != nil {
		return nil, nil, "", err
	}
	defer done()

	owner, service := ownerID.String(), serviceID.String()

	for attempt := 0; attempt < upsertAttempts; attempt++ {
		doc, err := ensureEntry(c, owner)
		if err != nil {
			if mgo.IsDup(err) {
				continue
			}
			return nil, nil, "", err
		}

		outcome, selectionID, err := applySelection(c, doc, service, planID)
		if err == mgo.ErrNotFound {
			// A concurrent writer changed the selections array; reload and retry.
			continue
		}
		if err != nil {
			return nil, nil, "", err
		}

		var fresh ledgerDoc
		if err := c.FindId(doc.ID).One(&fresh); err != nil {
			return nil, nil, "", err
		}
		entry, err := fresh.model()
		if err != nil {
			return nil, nil, "", err
		}
		selection, ok := entry.Selection(selectionID)
		if !ok {
			continue
		}
		return entry, selection, outcome, nil
	}

	return nil, nil, "", fmt.Errorf("upsert selection for owner %s: too much contention", owner)
}

func ensureEntry(c *mgo.Collection, owner string) (ledgerDoc, error) {
	now := time.Now().UTC()
	change := mgo.Change{
		Update: bson.M{"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"owner_id":   owner,
			"selections": []selectionDoc{},
			"created_at": now,
			"updated_at": now,
		}},
		Upsert:    true,
		ReturnNew: true,
	}
	var doc ledgerDoc
	_, err := c.Find(bson.M{"owner_id": owner}).Apply(change, &doc)
	return doc, err
}

func applySelection(c *mgo.Collection, doc ledgerDoc, service, planID string) (model.SelectionOutcome, uuid.UUID, error) {
	now := time.Now().UTC()

	for _, sel := range doc.Selections {
		if sel.ServiceID != service {
			continue
		}
		id, err := uuid.Parse(sel.ID)
		if err != nil {
			return "", uuid.Nil, err
		}
		if sel.PlanID == planID {
			return model.SelectionUnchanged, id, nil
		}
		err = c.Update(
			bson.M{"_id": doc.ID, "selections._id": sel.ID},
			bson.M{"$set": bson.M{"selections.$.plan_id": planID, "updated_at": now}},
		)
		return model.SelectionUpdated, id, err
	}

	id := uuid.New()
	err := c.Update(
		bson.M{"_id": doc.ID, "selections.service_id": bson.M{"$ne": service}},
		bson.M{
			"$push": bson.M{"selections": selectionDoc{
				ID:        id.String(),
				ServiceID: service,
				PlanID:    planID,
				Status:    string(model.SelectionStatusPending),
				CreatedAt: now,
			}},
			"$set": bson.M{"updated_at": now},
		},
	)
	return model.SelectionCreated, id, err
}

func (r *ledgerRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.LedgerEntry, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID.String()})
}

func (r *ledgerRepository) ListAll(ctx context.Context) ([]model.LedgerEntry, error) {
	return r.list(ctx, nil)
}

func (r *ledgerRepository) list(ctx context.Context, query interface{}) ([]model.LedgerEntry, error) {
	c, done, err := r.storage.collection(ctx, ledgerC)
	if err != nil {
		return nil, err
	}
	defer done()

	var docs []ledgerDoc
	if err := c.Find(query).Sort("-created_at").All(&docs); err != nil {
		return nil, err
	}
	entries := make([]model.LedgerEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := doc.model()
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (r *ledgerRepository) SetSelectionStatus(ctx context.Context, selectionID uuid.UUID, status model.SelectionStatus) (*model.LedgerEntry, error) {
	return r.modifyBySelection(ctx, selectionID, bson.M{
		"$set": bson.M{
			"selections.$.status": string(status),
			"updated_at":          time.Now().UTC(),
		},
	})
}

// CompleteSelection pulls the selection in the same findAndModify that
// matched it, so no reader observes a stored completed status.
func (r *ledgerRepository) CompleteSelection(ctx context.Context, selectionID uuid.UUID) (*model.LedgerEntry, error) {
	return r.modifyBySelection(ctx, selectionID, bson.M{
		"$pull": bson.M{"selections": bson.M{"_id": selectionID.String()}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *ledgerRepository) modifyBySelection(ctx context.Context, selectionID uuid.UUID, update bson.M) (*model.LedgerEntry, error) {
	c, done, err := r.storage.collection(ctx, ledgerC)
	if err != nil {
		return nil, err
	}
	defer done()

	var doc ledgerDoc
	_, err = c.Find(bson.M{"selections._id": selectionID.String()}).Apply(mgo.Change{Update: update, ReturnNew: true}, &doc)
	if err != nil {
		if err == mgo.ErrNotFound {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return doc.model()
}
