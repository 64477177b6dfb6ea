package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	latestPosts     = 3
)

// BlogUseCase manages blog posts written by administrators.
type BlogUseCase struct {
	posts  repository.BlogRepository
	users  repository.UserRepository
	logger *slog.Logger
}

// NewBlogUseCase constructs BlogUseCase.
func NewBlogUseCase(posts repository.BlogRepository, users repository.UserRepository, logger *slog.Logger) *BlogUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlogUseCase{posts: posts, users: users, logger: logger}
}

// Create publishes a post on behalf of authorID.
func (u *BlogUseCase) Create(ctx context.Context, authorID uuid.UUID, post model.BlogPost) (*model.ResolvedPost, error) {
	if err := NormalizePost(&post); err != nil {
		return nil, err
	}
	post.ID = uuid.New()
	post.AuthorID = authorID
	stored, err := u.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	return u.resolveOne(ctx, stored), nil
}

// Update applies a partial edit. Blank fields keep their stored value.
func (u *BlogUseCase) Update(ctx context.Context, rawID string, change model.BlogPostChange) (*model.ResolvedPost, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	post, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(change.Title); v != "" {
		post.Title = v
	}
	if v := strings.TrimSpace(change.Content); v != "" {
		post.Content = v
	}
	if v := strings.TrimSpace(change.Image); v != "" {
		post.Image = v
	}
	if change.Tags != nil {
		post.Tags = change.Tags
	}
	if err := NormalizePost(post); err != nil {
		return nil, err
	}
	stored, err := u.posts.Update(ctx, *post)
	if err != nil {
		return nil, err
	}
	return u.resolveOne(ctx, stored), nil
}

// Delete removes a post.
func (u *BlogUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}
	return u.posts.Delete(ctx, id)
}

// Get returns a single post.
func (u *BlogUseCase) Get(ctx context.Context, rawID string) (*model.ResolvedPost, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	post, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.resolveOne(ctx, post), nil
}

// List returns one page of posts, newest first. Out of range page and size
// values fall back to the first page and the default size.
func (u *BlogUseCase) List(ctx context.Context, page, pageSize int) (*model.BlogPage, error) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}
	posts, total, err := u.posts.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &model.BlogPage{
		Posts:    u.resolve(ctx, posts),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Latest returns the three newest posts.
func (u *BlogUseCase) Latest(ctx context.Context) ([]model.ResolvedPost, error) {
	posts, _, err := u.posts.List(ctx, 0, latestPosts)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, posts), nil
}

func (u *BlogUseCase) resolve(ctx context.Context, posts []model.BlogPost) []model.ResolvedPost {
	authors := newOwnerCache(u.users, u.logger, "resolve posts")
	out := make([]model.ResolvedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, model.ResolvedPost{BlogPost: p, Author: authors.get(ctx, p.AuthorID)})
	}
	return out
}

func (u *BlogUseCase) resolveOne(ctx context.Context, post *model.BlogPost) *model.ResolvedPost {
	resolved := u.resolve(ctx, []model.BlogPost{*post})
	return &resolved[0]
}
