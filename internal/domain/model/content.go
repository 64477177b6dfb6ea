package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is an article published by an administrator.
type BlogPost struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Content   string
	Image     string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogPostChange carries the fields of a post edit. Empty fields and a nil
// tag list keep their stored value.
type BlogPostChange struct {
	Title   string
	Content string
	Image   string
	Tags    []string
}

// ResolvedPost is a blog post with its author attached.
type ResolvedPost struct {
	BlogPost
	Author Owner
}

// BlogPage is one page of the blog, newest first.
type BlogPage struct {
	Posts    []ResolvedPost
	Total    int
	Page     int
	PageSize int
}

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Review is a customer's rating of the platform. Each user keeps at most one.
type Review struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolvedReview is a review with its author attached.
type ResolvedReview struct {
	Review
	Author Owner
}

// ReviewSummary lists reviews newest first with their average rating.
type ReviewSummary struct {
	Reviews []ResolvedReview
	Average float64
}

// AverageRating returns the mean rating of reviews, or 0 when there are none.
func AverageRating(reviews []ResolvedReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// AccountChange carries the fields of an account edit. Empty fields keep
// their stored value.
type AccountChange struct {
	Name     string
	Email    string
	Password string
}
