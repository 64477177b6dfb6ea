package dto

import (
	"time"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// SelectRequest asks to book a service on a pricing plan.
type SelectRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	PlanID    string `json:"planId"`
}

// StatusRequest carries the new selection status.
type StatusRequest struct {
	Status string `json:"status" binding:"required,selection_status"`
}

// ServiceSummary is the catalog data attached to a selection.
type ServiceSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// ResolvedPlan is the pricing tier matched by a selection's plan id.
type ResolvedPlan struct {
	Tier string `json:"tier"`
	PlanPayload
}

// SelectionResponse is one selection with its resolved catalog data.
type SelectionResponse struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"serviceId"`
	PlanID    string          `json:"planId"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Service   *ServiceSummary `json:"service"`
	Plan      *ResolvedPlan   `json:"plan"`
}

// OwnerResponse identifies the owner of a ledger entry.
type OwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EntryResponse is a ledger entry prepared for display.
type EntryResponse struct {
	ID        string              `json:"id"`
	User      OwnerResponse       `json:"user"`
	Services  []SelectionResponse `json:"services"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// SelectionResultResponse is returned by the booking endpoint.
type SelectionResultResponse struct {
	Entry     EntryResponse     `json:"entry"`
	Selection SelectionResponse `json:"selection"`
	Outcome   string            `json:"outcome"`
}

// NewSelectionResponse converts a resolved selection.
func NewSelectionResponse(s *model.ResolvedSelection) SelectionResponse {
	resp := SelectionResponse{
		ID:        s.ID.String(),
		ServiceID: s.ServiceID.String(),
		PlanID:    s.PlanID,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
	if s.Service != nil {
		resp.Service = &ServiceSummary{ID: s.Service.ID.String(), Title: s.Service.Title, Image: s.Service.Image}
	}
	if s.Plan != nil {
		resp.Plan = &ResolvedPlan{Tier: string(s.Tier), PlanPayload: newPlanPayload(s.Plan)}
	}
	return resp
}

// NewEntryResponse converts a resolved ledger entry.
func NewEntryResponse(e *model.ResolvedEntry) EntryResponse {
	selections := make([]SelectionResponse, 0, len(e.Selections))
	for i := range e.Selections {
		selections = append(selections, NewSelectionResponse(&e.Selections[i]))
	}
	return EntryResponse{
		ID:        e.ID.String(),
		User:      newOwnerResponse(e.Owner),
		Services:  selections,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// NewEntryList converts a listing of ledger entries.
func NewEntryList(entries []model.ResolvedEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewEntryResponse(&entries[i]))
	}
	return out
}

// NewSelectionResult converts the booking outcome.
func NewSelectionResult(r *model.SelectionResult) SelectionResultResponse {
	resp := SelectionResultResponse{Outcome: string(r.Outcome)}
	if r.Entry != nil {
		resp.Entry = NewEntryResponse(r.Entry)
	}
	if r.Selection != nil {
		resp.Selection = NewSelectionResponse(r.Selection)
	}
	return resp
}
