package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

func (r *contactRepository) Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	const query = `INSERT INTO contact_messages (id, author_id, name, email, message)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING created_at`
	if msg.ID == uuid.Nil {
		msg.ID = newID()
	}
	if err := r.storage.pool.QueryRow(ctx, query, msg.ID, msg.AuthorID, msg.Name, msg.Email, msg.Message).Scan(&msg.CreatedAt); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, author_id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.AuthorID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
