package mongo

import (
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	IsAdmin      bool      `bson:"is_admin"`
	CreatedAt    time.Time `bson:"created_at"`
}

type planDoc struct {
	PlanID   string   `bson:"plan_id"`
	Price    float64  `bson:"price"`
	Features []string `bson:"features"`
}

type serviceDoc struct {
	ID           string             `bson:"_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Categories   []string           `bson:"categories"`
	Image        string             `bson:"image,omitempty"`
	PricingPlans map[string]planDoc `bson:"pricing_plans"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type blogDoc struct {
	ID        string    `bson:"_id"`
	AuthorID  string    `bson:"author_id"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	Image     string    `bson:"image,omitempty"`
	Tags      []string  `bson:"tags"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type contactDoc struct {
	ID        string    `bson:"_id"`
	AuthorID  string    `bson:"author_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

type reviewDoc struct {
	ID        string    `bson:"_id"`
	AuthorID  string    `bson:"author_id"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type selectionDoc struct {
	ID        string    `bson:"_id"`
	ServiceID string    `bson:"service_id"`
	PlanID    string    `bson:"plan_id"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
}

type ledgerDoc struct {
	ID         string         `bson:"_id"`
	OwnerID    string         `bson:"owner_id"`
	Selections []selectionDoc `bson:"selections"`
	CreatedAt  time.Time      `bson:"created_at"`
	UpdatedAt  time.Time      `bson:"updated_at"`
}

func toUserDoc(u model.User) userDoc {
	return userDoc{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDoc) model() (*model.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt,
	}, nil
}

func toServiceDoc(s model.Service) serviceDoc {
	plans := make(map[string]planDoc, len(s.PricingPlans))
	for tier, plan := range s.PricingPlans {
		plans[string(tier)] = planDoc{PlanID: plan.PlanID, Price: plan.Price, Features: plan.Features}
	}
	return serviceDoc{
		ID:           s.ID.String(),
		Title:        s.Title,
		Description:  s.Description,
		Categories:   s.Categories,
		Image:        s.Image,
		PricingPlans: plans,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (d serviceDoc) model() (*model.Service, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	plans := make(map[model.PlanTier]model.PricingPlan, len(d.PricingPlans))
	for tier, plan := range d.PricingPlans {
		plans[model.PlanTier(tier)] = model.PricingPlan{PlanID: plan.PlanID, Price: plan.Price, Features: plan.Features}
	}
	return &model.Service{
		ID:           id,
		Title:        d.Title,
		Description:  d.Description,
		Categories:   d.Categories,
		Image:        d.Image,
		PricingPlans: plans,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func (d ledgerDoc) model() (*model.LedgerEntry, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	owner, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return nil, err
	}
	entry := &model.LedgerEntry{
		ID:         id,
		OwnerID:    owner,
		Selections: make([]model.Selection, 0, len(d.Selections)),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	for _, sd := range d.Selections {
		selID, err := uuid.Parse(sd.ID)
		if err != nil {
			return nil, err
		}
		serviceID, err := uuid.Parse(sd.ServiceID)
		if err != nil {
			return nil, err
		}
		entry.Selections = append(entry.Selections, model.Selection{
			ID:        selID,
			ServiceID: serviceID,
			PlanID:    sd.PlanID,
			Status:    model.SelectionStatus(sd.Status),
			CreatedAt: sd.CreatedAt,
		})
	}
	return entry, nil
}

func parseIDs(raw ...string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func toBlogDoc(p model.BlogPost) blogDoc {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return blogDoc{
		ID:        p.ID.String(),
		AuthorID:  p.AuthorID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Image:     p.Image,
		Tags:      tags,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (d blogDoc) model() (*model.BlogPost, error) {
	ids, err := parseIDs(d.ID, d.AuthorID)
	if err != nil {
		return nil, err
	}
	return &model.BlogPost{
		ID:        ids[0],
		AuthorID:  ids[1],
		Title:     d.Title,
		Content:   d.Content,
		Image:     d.Image,
		Tags:      d.Tags,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func (d contactDoc) model() (*model.ContactMessage, error) {
	ids, err := parseIDs(d.ID, d.AuthorID)
	if err != nil {
		return nil, err
	}
	return &model.ContactMessage{
		ID:        ids[0],
		AuthorID:  ids[1],
		Name:      d.Name,
		Email:     d.Email,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}, nil
}

func (d reviewDoc) model() (*model.Review, error) {
	ids, err := parseIDs(d.ID, d.AuthorID)
	if err != nil {
		return nil, err
	}
	return &model.Review{
		ID:        ids[0],
		AuthorID:  ids[1],
		Rating:    d.Rating,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
