package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// contentClock hands out strictly increasing timestamps so newest-first
// ordering is deterministic.
type contentClock struct {
	now time.Time
}

func (c *contentClock) tick() time.Time {
	if c.now.IsZero() {
		c.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	c.now = c.now.Add(time.Second)
	return c.now
}

// BlogRepositoryStub keeps blog posts in insertion order.
type BlogRepositoryStub struct {
	mu    sync.Mutex
	posts []model.BlogPost
	clock contentClock
	Err   error
}

// NewBlogRepositoryStub constructs an empty blog.
func NewBlogRepositoryStub() *BlogRepositoryStub {
	return &BlogRepositoryStub{}
}

func (s *BlogRepositoryStub) Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.CreatedAt = s.clock.tick()
	post.UpdatedAt = post.CreatedAt
	s.posts = append(s.posts, post)
	return &post, nil
}

func (s *BlogRepositoryStub) Update(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.posts {
		if s.posts[i].ID != post.ID {
			continue
		}
		stored := &s.posts[i]
		stored.Title, stored.Content, stored.Image, stored.Tags = post.Title, post.Content, post.Image, post.Tags
		stored.UpdatedAt = s.clock.tick()
		cp := *stored
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *BlogRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *BlogRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *BlogRepositoryStub) List(ctx context.Context, offset, limit int) ([]model.BlogPost, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var out []model.BlogPost
	for i := len(s.posts) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.posts[i])
	}
	return out, len(s.posts), nil
}

// ContactRepositoryStub keeps contact messages in memory.
type ContactRepositoryStub struct {
	mu       sync.Mutex
	messages []model.ContactMessage
	clock    contentClock
	Err      error
}

// NewContactRepositoryStub constructs an empty inbox.
func NewContactRepositoryStub() *ContactRepositoryStub {
	return &ContactRepositoryStub{}
}

func (s *ContactRepositoryStub) Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = s.clock.tick()
	s.messages = append(s.messages, msg)
	return &msg, nil
}

func (s *ContactRepositoryStub) List(ctx context.Context) ([]model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.ContactMessage, 0, len(s.messages))
	for i := len(s.messages) - 1; i >= 0; i-- {
		out = append(out, s.messages[i])
	}
	return out, nil
}

// ReviewRepositoryStub keeps one review per author.
type ReviewRepositoryStub struct {
	mu      sync.Mutex
	reviews []model.Review
	clock   contentClock
	Err     error
}

// NewReviewRepositoryStub constructs an empty review store.
func NewReviewRepositoryStub() *ReviewRepositoryStub {
	return &ReviewRepositoryStub{}
}

func (s *ReviewRepositoryStub) Upsert(ctx context.Context, review model.Review) (*model.Review, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, false, s.Err
	}
	for i := range s.reviews {
		if s.reviews[i].AuthorID != review.AuthorID {
			continue
		}
		stored := &s.reviews[i]
		stored.Rating, stored.Comment = review.Rating, review.Comment
		stored.UpdatedAt = s.clock.tick()
		cp := *stored
		return &cp, false, nil
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = s.clock.tick()
	review.UpdatedAt = review.CreatedAt
	s.reviews = append(s.reviews, review)
	return &review, true, nil
}

func (s *ReviewRepositoryStub) List(ctx context.Context) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Review, 0, len(s.reviews))
	for i := len(s.reviews) - 1; i >= 0; i-- {
		out = append(out, s.reviews[i])
	}
	return out, nil
}
