package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

func (r *contactRepository) Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	c, done, err := r.storage.collection(ctx, contactsC)
	if err != nil {
		return nil, err
	}
	defer done()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now().UTC()
	doc := contactDoc{
		ID:        msg.ID.String(),
		AuthorID:  msg.AuthorID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
	if err := c.Insert(doc); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	c, done, err := r.storage.collection(ctx, contactsC)
	if err != nil {
		return nil, err
	}
	defer done()

	var docs []contactDoc
	if err := c.Find(nil).Sort("-created_at").All(&docs); err != nil {
		return nil, err
	}
	result := make([]model.ContactMessage, 0, len(docs))
	for _, doc := range docs {
		msg, err := doc.model()
		if err != nil {
			return nil, err
		}
		result = append(result, *msg)
	}
	return result, nil
}
