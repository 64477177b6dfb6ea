package dto

import (
	"time"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// PostRequest is the admin payload for publishing a blog post.
type PostRequest struct {
	Title   string   `json:"title" binding:"required,min=5"`
	Content string   `json:"content" binding:"required,min=20"`
	Image   string   `json:"image" binding:"omitempty,url"`
	Tags    []string `json:"tags"`
}

// ToModel converts the request into a blog post.
func (r PostRequest) ToModel() model.BlogPost {
	return model.BlogPost{Title: r.Title, Content: r.Content, Image: r.Image, Tags: r.Tags}
}

// PostChangeRequest edits a blog post. Omitted fields are kept.
type PostChangeRequest struct {
	Title   string   `json:"title" binding:"omitempty,min=5"`
	Content string   `json:"content" binding:"omitempty,min=20"`
	Image   string   `json:"image" binding:"omitempty,url"`
	Tags    []string `json:"tags"`
}

// ToModel converts the request into a post change.
func (r PostChangeRequest) ToModel() model.BlogPostChange {
	return model.BlogPostChange{Title: r.Title, Content: r.Content, Image: r.Image, Tags: r.Tags}
}

// PostResponse is the public view of a blog post.
type PostResponse struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Image     string        `json:"image,omitempty"`
	Tags      []string      `json:"tags"`
	Author    OwnerResponse `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// PageMeta describes a page of results.
type PageMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// PostPageResponse is one page of the blog.
type PostPageResponse struct {
	Blogs []PostResponse `json:"blogs"`
	Meta  PageMeta       `json:"meta"`
}

// NewPostResponse converts a resolved post.
func NewPostResponse(p *model.ResolvedPost) PostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Image:     p.Image,
		Tags:      tags,
		Author:    newOwnerResponse(p.Author),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPostList converts a list of posts.
func NewPostList(posts []model.ResolvedPost) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResponse(&posts[i]))
	}
	return out
}

// NewPostPage converts a page of posts.
func NewPostPage(p *model.BlogPage) PostPageResponse {
	return PostPageResponse{
		Blogs: NewPostList(p.Posts),
		Meta:  PageMeta{Total: p.Total, Page: p.Page, PageSize: p.PageSize},
	}
}

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
}

// ToModel converts the request into a contact message.
func (r ContactRequest) ToModel() model.ContactMessage {
	return model.ContactMessage{Name: r.Name, Email: r.Email, Message: r.Message}
}

// ContactResponse is the stored view of a contact message.
type ContactResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContactResponse converts a contact message.
func NewContactResponse(m *model.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:        m.ID.String(),
		AuthorID:  m.AuthorID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// NewContactList converts the inbox.
func NewContactList(msgs []model.ContactMessage) []ContactResponse {
	out := make([]ContactResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, NewContactResponse(&msgs[i]))
	}
	return out
}

// ReviewRequest rates the platform.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,min=3"`
}

// ToModel converts the request into a review.
func (r ReviewRequest) ToModel() model.Review {
	return model.Review{Rating: r.Rating, Comment: r.Comment}
}

// ReviewResponse is the public view of a review.
type ReviewResponse struct {
	ID        string        `json:"id"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	Author    OwnerResponse `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ReviewSummaryResponse lists reviews with their average rating.
type ReviewSummaryResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Average float64          `json:"averageRating"`
}

// NewReviewSummary converts a review summary.
func NewReviewSummary(s *model.ReviewSummary) ReviewSummaryResponse {
	reviews := make([]ReviewResponse, 0, len(s.Reviews))
	for _, r := range s.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:        r.ID.String(),
			Rating:    r.Rating,
			Comment:   r.Comment,
			Author:    newOwnerResponse(r.Author),
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return ReviewSummaryResponse{Reviews: reviews, Average: s.Average}
}

func newOwnerResponse(o model.Owner) OwnerResponse {
	return OwnerResponse{ID: o.ID.String(), Name: o.Name, Email: o.Email}
}
