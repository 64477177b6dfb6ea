package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanTier names a pricing tier of a service.
type PlanTier string

const (
	PlanTierBasic    PlanTier = "basic"
	PlanTierStandard PlanTier = "standard"
	PlanTierPremium  PlanTier = "premium"
)

// PlanTiers lists tiers in their canonical scan order.
var PlanTiers = []PlanTier{PlanTierBasic, PlanTierStandard, PlanTierPremium}

// Valid reports whether t is a known tier.
func (t PlanTier) Valid() bool {
	for _, known := range PlanTiers {
		if t == known {
			return true
		}
	}
	return false
}

// PricingPlan is a single priced tier of a service.
type PricingPlan struct {
	PlanID   string
	Price    float64
	Features []string
}

// Service is a catalog entry customers can order.
type Service struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Categories   []string
	Image        string
	PricingPlans map[PlanTier]PricingPlan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FindPlan scans the pricing tiers for planID.
func (s *Service) FindPlan(planID string) (PlanTier, *PricingPlan, bool) {
	if s == nil || planID == "" {
		return "", nil, false
	}
	for _, tier := range PlanTiers {
		plan, ok := s.PricingPlans[tier]
		if ok && plan.PlanID == planID {
			return tier, &plan, true
		}
	}
	return "", nil, false
}
