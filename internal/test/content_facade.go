package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// ContentFacadeStub simulates blog, contact and review operations.
type ContentFacadeStub struct {
	CreatePostFn    func(context.Context, uuid.UUID, model.BlogPost) (*model.ResolvedPost, error)
	UpdatePostFn    func(context.Context, string, model.BlogPostChange) (*model.ResolvedPost, error)
	DeletePostFn    func(context.Context, string) error
	PostFn          func(context.Context, string) (*model.ResolvedPost, error)
	PostsFn         func(context.Context, int, int) (*model.BlogPage, error)
	LatestPostsFn   func(context.Context) ([]model.ResolvedPost, error)
	SubmitContactFn func(context.Context, uuid.UUID, model.ContactMessage) (*model.ContactMessage, error)
	ContactsFn      func(context.Context) ([]model.ContactMessage, error)
	SubmitReviewFn  func(context.Context, uuid.UUID, model.Review) (*model.ReviewSummary, bool, error)
	ReviewsFn       func(context.Context) (*model.ReviewSummary, error)
}

// CreatePost echoes the post with a fresh id.
func (s ContentFacadeStub) CreatePost(ctx context.Context, authorID uuid.UUID, post model.BlogPost) (*model.ResolvedPost, error) {
	if s.CreatePostFn != nil {
		return s.CreatePostFn(ctx, authorID, post)
	}
	post.ID, post.AuthorID = uuid.New(), authorID
	return &model.ResolvedPost{BlogPost: post, Author: model.Owner{ID: authorID}}, nil
}

// UpdatePost applies the change to an empty post.
func (s ContentFacadeStub) UpdatePost(ctx context.Context, id string, change model.BlogPostChange) (*model.ResolvedPost, error) {
	if s.UpdatePostFn != nil {
		return s.UpdatePostFn(ctx, id, change)
	}
	return &model.ResolvedPost{BlogPost: model.BlogPost{ID: uuid.New(), Title: change.Title, Content: change.Content}}, nil
}

// DeletePost succeeds unless overridden.
func (s ContentFacadeStub) DeletePost(ctx context.Context, id string) error {
	if s.DeletePostFn != nil {
		return s.DeletePostFn(ctx, id)
	}
	return nil
}

// Post returns an empty post unless overridden.
func (s ContentFacadeStub) Post(ctx context.Context, id string) (*model.ResolvedPost, error) {
	if s.PostFn != nil {
		return s.PostFn(ctx, id)
	}
	return &model.ResolvedPost{BlogPost: model.BlogPost{ID: uuid.New()}}, nil
}

// Posts returns an empty page echoing the paging arguments.
func (s ContentFacadeStub) Posts(ctx context.Context, page, pageSize int) (*model.BlogPage, error) {
	if s.PostsFn != nil {
		return s.PostsFn(ctx, page, pageSize)
	}
	return &model.BlogPage{Page: page, PageSize: pageSize}, nil
}

// LatestPosts returns no posts unless overridden.
func (s ContentFacadeStub) LatestPosts(ctx context.Context) ([]model.ResolvedPost, error) {
	if s.LatestPostsFn != nil {
		return s.LatestPostsFn(ctx)
	}
	return nil, nil
}

// SubmitContact echoes the message with a fresh id.
func (s ContentFacadeStub) SubmitContact(ctx context.Context, authorID uuid.UUID, msg model.ContactMessage) (*model.ContactMessage, error) {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, authorID, msg)
	}
	msg.ID, msg.AuthorID = uuid.New(), authorID
	return &msg, nil
}

// Contacts returns an empty inbox unless overridden.
func (s ContentFacadeStub) Contacts(ctx context.Context) ([]model.ContactMessage, error) {
	if s.ContactsFn != nil {
		return s.ContactsFn(ctx)
	}
	return nil, nil
}

// SubmitReview reports a first review unless overridden.
func (s ContentFacadeStub) SubmitReview(ctx context.Context, authorID uuid.UUID, review model.Review) (*model.ReviewSummary, bool, error) {
	if s.SubmitReviewFn != nil {
		return s.SubmitReviewFn(ctx, authorID, review)
	}
	review.ID, review.AuthorID = uuid.New(), authorID
	resolved := []model.ResolvedReview{{Review: review, Author: model.Owner{ID: authorID}}}
	return &model.ReviewSummary{Reviews: resolved, Average: float64(review.Rating)}, true, nil
}

// Reviews returns no reviews unless overridden.
func (s ContentFacadeStub) Reviews(ctx context.Context) (*model.ReviewSummary, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx)
	}
	return &model.ReviewSummary{}, nil
}
