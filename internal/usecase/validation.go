package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const (
	minTitleLen       = 3
	maxTitleLen       = 100
	minDescriptionLen = 10
	maxDescriptionLen = 1000
)

// ParseID parses an opaque identifier supplied by a client.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidIdentifier, raw)
	}
	return id, nil
}

// NormalizeService trims and validates a catalog entry in place. Blank plan
// identifiers are generated.
func NormalizeService(svc *model.Service) error {
	svc.Title = strings.TrimSpace(svc.Title)
	svc.Description = strings.TrimSpace(svc.Description)
	svc.Image = strings.TrimSpace(svc.Image)

	if n := utf8.RuneCountInString(svc.Title); n < minTitleLen || n > maxTitleLen {
		return fmt.Errorf("%w: title must be %d to %d characters", domainErrors.ErrInvalidService, minTitleLen, maxTitleLen)
	}
	if n := utf8.RuneCountInString(svc.Description); n < minDescriptionLen || n > maxDescriptionLen {
		return fmt.Errorf("%w: description must be %d to %d characters", domainErrors.ErrInvalidService, minDescriptionLen, maxDescriptionLen)
	}

	svc.Categories = normalizeCategories(svc.Categories)
	if len(svc.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", domainErrors.ErrInvalidService)
	}

	if len(svc.PricingPlans) == 0 {
		return fmt.Errorf("%w: at least one pricing plan is required", domainErrors.ErrInvalidService)
	}

	seen := make(map[string]model.PlanTier, len(svc.PricingPlans))
	plans := make(map[model.PlanTier]model.PricingPlan, len(svc.PricingPlans))
	for _, tier := range model.PlanTiers {
		plan, ok := svc.PricingPlans[tier]
		if !ok {
			continue
		}
		if plan.Price < 0 {
			return fmt.Errorf("%w: %s price must not be negative", domainErrors.ErrInvalidService, tier)
		}
		plan.PlanID = strings.TrimSpace(plan.PlanID)
		if plan.PlanID == "" {
			plan.PlanID = uuid.NewString()
		}
		if other, dup := seen[plan.PlanID]; dup {
			return fmt.Errorf("%w: plan id %q used by %s and %s", domainErrors.ErrInvalidService, plan.PlanID, other, tier)
		}
		seen[plan.PlanID] = tier
		plan.Features = normalizeFeatures(plan.Features)
		plans[tier] = plan
	}
	if len(plans) != len(svc.PricingPlans) {
		return fmt.Errorf("%w: unknown pricing tier", domainErrors.ErrInvalidService)
	}
	svc.PricingPlans = plans
	return nil
}

func normalizeCategories(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func normalizeFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

const (
	minPostTitleLen   = 5
	minPostContentLen = 20
	minContactNameLen = 2
	minContactMsgLen  = 10
	minRating         = 1
	maxRating         = 5
	minCommentLen     = 3
)

// NormalizePost trims and validates a blog post in place.
func NormalizePost(post *model.BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	post.Content = strings.TrimSpace(post.Content)
	post.Image = strings.TrimSpace(post.Image)
	post.Tags = normalizeFeatures(post.Tags)

	if utf8.RuneCountInString(post.Title) < minPostTitleLen {
		return fmt.Errorf("%w: title must be at least %d characters", domainErrors.ErrInvalidContent, minPostTitleLen)
	}
	if utf8.RuneCountInString(post.Content) < minPostContentLen {
		return fmt.Errorf("%w: content must be at least %d characters", domainErrors.ErrInvalidContent, minPostContentLen)
	}
	return nil
}

// NormalizeContact trims and validates a contact message in place.
func NormalizeContact(msg *model.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = normalizeEmail(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if utf8.RuneCountInString(msg.Name) < minContactNameLen {
		return fmt.Errorf("%w: name must be at least %d characters", domainErrors.ErrInvalidContent, minContactNameLen)
	}
	if !validEmail(msg.Email) {
		return fmt.Errorf("%w: email is not valid", domainErrors.ErrInvalidContent)
	}
	if utf8.RuneCountInString(msg.Message) < minContactMsgLen {
		return fmt.Errorf("%w: message must be at least %d characters", domainErrors.ErrInvalidContent, minContactMsgLen)
	}
	return nil
}

// NormalizeReview trims and validates a review in place.
func NormalizeReview(review *model.Review) error {
	review.Comment = strings.TrimSpace(review.Comment)
	if review.Rating < minRating || review.Rating > maxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", domainErrors.ErrInvalidContent, minRating, maxRating)
	}
	if utf8.RuneCountInString(review.Comment) < minCommentLen {
		return fmt.Errorf("%w: comment must be at least %d characters", domainErrors.ErrInvalidContent, minCommentLen)
	}
	return nil
}

// validEmail accepts a bare address; display names are rejected.
func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
