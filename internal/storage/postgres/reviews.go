package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const reviewColumns = `id, author_id, rating, comment, created_at, updated_at`

// Upsert relies on the unique author_id; xmax is zero only for a freshly
// inserted row.
func (r *reviewRepository) Upsert(ctx context.Context, review model.Review) (*model.Review, bool, error) {
	const query = `INSERT INTO reviews (id, author_id, rating, comment)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (author_id) DO UPDATE
                   SET rating=EXCLUDED.rating, comment=EXCLUDED.comment, updated_at=NOW()
                   RETURNING ` + reviewColumns + `, (xmax = 0) AS inserted`
	if review.ID == uuid.Nil {
		review.ID = newID()
	}
	var (
		stored   model.Review
		inserted bool
	)
	err := r.storage.pool.QueryRow(ctx, query, review.ID, review.AuthorID, review.Rating, review.Comment).
		Scan(&stored.ID, &stored.AuthorID, &stored.Rating, &stored.Comment, &stored.CreatedAt, &stored.UpdatedAt, &inserted)
	if err != nil {
		return nil, false, err
	}
	return &stored, inserted, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.AuthorID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
