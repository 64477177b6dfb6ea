package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
	testhelpers "github.com/polkiloo/servicebooking/internal/test"
)

func TestContactUseCaseSubmitAndList(t *testing.T) {
	repo := testhelpers.NewContactRepositoryStub()
	uc := NewContactUseCase(repo)
	ctx := context.Background()
	author := uuid.New()

	first, err := uc.Submit(ctx, author, model.ContactMessage{Name: " Ivy ", Email: "IVY@example.com", Message: "Please call me back"})
	require.NoError(t, err)
	assert.Equal(t, author, first.AuthorID)
	assert.Equal(t, "Ivy", first.Name)
	assert.Equal(t, "ivy@example.com", first.Email)

	_, err = uc.Submit(ctx, author, model.ContactMessage{Name: "Ivy", Email: "ivy@example.com", Message: "Second message here"})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second message here", list[0].Message)
}

func TestContactUseCaseSubmitValidation(t *testing.T) {
	uc := NewContactUseCase(testhelpers.NewContactRepositoryStub())
	cases := map[string]model.ContactMessage{
		"short name":    {Name: "I", Email: "ivy@example.com", Message: "Please call me back"},
		"bad email":     {Name: "Ivy", Email: "ivy-at-example", Message: "Please call me back"},
		"display name":  {Name: "Ivy", Email: "Ivy <ivy@example.com>", Message: "Please call me back"},
		"short message": {Name: "Ivy", Email: "ivy@example.com", Message: "hi"},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Submit(context.Background(), uuid.New(), msg)
			assert.ErrorIs(t, err, domainErrors.ErrInvalidContent)
		})
	}
}

func TestContactUseCaseRepositoryError(t *testing.T) {
	repo := testhelpers.NewContactRepositoryStub()
	repo.Err = errors.New("db down")
	uc := NewContactUseCase(repo)

	_, err := uc.Submit(context.Background(), uuid.New(), model.ContactMessage{Name: "Ivy", Email: "ivy@example.com", Message: "Please call me back"})
	assert.Error(t, err)
	_, err = uc.List(context.Background())
	assert.Error(t, err)
}
