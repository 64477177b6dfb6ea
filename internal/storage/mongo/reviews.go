package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juju/mgo/v3"
	"github.com/juju/mgo/v3/bson"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// Upsert keys the review by author; the unique author_id index makes a lost
// insert race fail with a duplicate key, which is retried as an update.
func (r *reviewRepository) Upsert(ctx context.Context, review model.Review) (*model.Review, bool, error) {
	c, done, err := r.storage.collection(ctx, reviewsC)
	if err != nil {
		return nil, false, err
	}
	defer done()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	now := time.Now().UTC()
	change := mgo.Change{
		Update: bson.M{
			"$set": bson.M{
				"rating":     review.Rating,
				"comment":    review.Comment,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"_id":        review.ID.String(),
				"created_at": now,
			},
		},
		Upsert:    true,
		ReturnNew: true,
	}

	var (
		doc  reviewDoc
		info *mgo.ChangeInfo
	)
	for attempt := 0; attempt < 2; attempt++ {
		info, err = c.Find(bson.M{"author_id": review.AuthorID.String()}).Apply(change, &doc)
		if err == nil || !mgo.IsDup(err) {
			break
		}
	}
	if err != nil {
		return nil, false, err
	}
	stored, err := doc.model()
	if err != nil {
		return nil, false, err
	}
	return stored, info != nil && info.UpsertedId != nil, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	c, done, err := r.storage.collection(ctx, reviewsC)
	if err != nil {
		return nil, err
	}
	defer done()

	var docs []reviewDoc
	if err := c.Find(nil).Sort("-created_at").All(&docs); err != nil {
		return nil, err
	}
	result := make([]model.Review, 0, len(docs))
	for _, doc := range docs {
		rv, err := doc.model()
		if err != nil {
			return nil, err
		}
		result = append(result, *rv)
	}
	return result, nil
}
