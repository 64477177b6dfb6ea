package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

// ownerCache resolves display owners, loading each user at most once. A
// failed lookup degrades to an id-only owner.
type ownerCache struct {
	users  repository.UserRepository
	logger *slog.Logger
	op     string
	seen   map[uuid.UUID]model.Owner
}

func newOwnerCache(users repository.UserRepository, logger *slog.Logger, op string) *ownerCache {
	return &ownerCache{users: users, logger: logger, op: op, seen: make(map[uuid.UUID]model.Owner)}
}

func (c *ownerCache) get(ctx context.Context, id uuid.UUID) model.Owner {
	if owner, ok := c.seen[id]; ok {
		return owner
	}
	owner := model.Owner{ID: id}
	usr, err := c.users.GetByID(ctx, id)
	switch {
	case err == nil:
		owner = model.OwnerOf(usr)
	case !errors.Is(err, domainErrors.ErrNotFound):
		c.logger.Error(c.op+": load owner",
			slog.String("owner_id", id.String()),
			slog.Any("error", err),
		)
	}
	c.seen[id] = owner
	return owner
}
