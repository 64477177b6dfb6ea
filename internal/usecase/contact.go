package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

// ContactUseCase stores messages left through the contact form.
type ContactUseCase struct {
	messages repository.ContactRepository
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(messages repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{messages: messages}
}

// Submit records a message from authorID.
func (u *ContactUseCase) Submit(ctx context.Context, authorID uuid.UUID, msg model.ContactMessage) (*model.ContactMessage, error) {
	if err := NormalizeContact(&msg); err != nil {
		return nil, err
	}
	msg.ID = uuid.New()
	msg.AuthorID = authorID
	return u.messages.Create(ctx, msg)
}

// List returns every message, newest first.
func (u *ContactUseCase) List(ctx context.Context) ([]model.ContactMessage, error) {
	return u.messages.List(ctx)
}
