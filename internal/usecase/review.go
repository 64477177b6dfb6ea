package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

// ReviewUseCase collects platform reviews, one per user.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
	logger  *slog.Logger
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, users repository.UserRepository, logger *slog.Logger) *ReviewUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewUseCase{reviews: reviews, users: users, logger: logger}
}

// Submit stores the author's review, replacing an earlier one, and returns
// the refreshed list. created reports whether this was the author's first
// review.
func (u *ReviewUseCase) Submit(ctx context.Context, authorID uuid.UUID, review model.Review) (*model.ReviewSummary, bool, error) {
	if err := NormalizeReview(&review); err != nil {
		return nil, false, err
	}
	review.ID = uuid.New()
	review.AuthorID = authorID
	_, created, err := u.reviews.Upsert(ctx, review)
	if err != nil {
		return nil, false, err
	}
	summary, err := u.List(ctx)
	if err != nil {
		return nil, false, err
	}
	return summary, created, nil
}

// List returns every review, newest first, with the average rating.
func (u *ReviewUseCase) List(ctx context.Context) (*model.ReviewSummary, error) {
	reviews, err := u.reviews.List(ctx)
	if err != nil {
		return nil, err
	}
	authors := newOwnerCache(u.users, u.logger, "resolve reviews")
	resolved := make([]model.ResolvedReview, 0, len(reviews))
	for _, r := range reviews {
		resolved = append(resolved, model.ResolvedReview{Review: r, Author: authors.get(ctx, r.AuthorID)})
	}
	return &model.ReviewSummary{Reviews: resolved, Average: model.AverageRating(resolved)}, nil
}
