package dto

import (
	"time"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// PlanPayload is one pricing tier of a service.
type PlanPayload struct {
	PlanID   string   `json:"planId"`
	Price    float64  `json:"price" binding:"gte=0"`
	Features []string `json:"features"`
}

// ServiceRequest is the admin payload for creating or replacing a service.
type ServiceRequest struct {
	Title        string                 `json:"title" binding:"required,min=3,max=100"`
	Description  string                 `json:"description" binding:"required,min=10,max=1000"`
	Categories   []string               `json:"categories" binding:"required,min=1"`
	Image        string                 `json:"image" binding:"omitempty,url"`
	PricingPlans map[string]PlanPayload `json:"pricingPlans" binding:"required,min=1,dive,keys,plan_tier,endkeys,required"`
}

// ToModel converts the request into a catalog entry.
func (r ServiceRequest) ToModel() model.Service {
	plans := make(map[model.PlanTier]model.PricingPlan, len(r.PricingPlans))
	for tier, p := range r.PricingPlans {
		plans[model.PlanTier(tier)] = model.PricingPlan{PlanID: p.PlanID, Price: p.Price, Features: p.Features}
	}
	return model.Service{
		Title:        r.Title,
		Description:  r.Description,
		Categories:   r.Categories,
		Image:        r.Image,
		PricingPlans: plans,
	}
}

// ServiceResponse is the public view of a catalog entry.
type ServiceResponse struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Categories   []string               `json:"categories"`
	Image        string                 `json:"image,omitempty"`
	PricingPlans map[string]PlanPayload `json:"pricingPlans"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// NewServiceResponse converts svc for output.
func NewServiceResponse(svc *model.Service) ServiceResponse {
	plans := make(map[string]PlanPayload, len(svc.PricingPlans))
	for tier, p := range svc.PricingPlans {
		plans[string(tier)] = newPlanPayload(&p)
	}
	return ServiceResponse{
		ID:           svc.ID.String(),
		Title:        svc.Title,
		Description:  svc.Description,
		Categories:   svc.Categories,
		Image:        svc.Image,
		PricingPlans: plans,
		CreatedAt:    svc.CreatedAt,
		UpdatedAt:    svc.UpdatedAt,
	}
}

// NewServiceList converts a catalog listing.
func NewServiceList(services []model.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, NewServiceResponse(&services[i]))
	}
	return out
}

func newPlanPayload(p *model.PricingPlan) PlanPayload {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PlanPayload{PlanID: p.PlanID, Price: p.Price, Features: features}
}
