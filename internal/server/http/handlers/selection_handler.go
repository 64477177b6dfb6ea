package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/server/http/dto"
	"github.com/polkiloo/servicebooking/internal/server/http/middleware"
)

// SelectionHandler serves the order ledger.
type SelectionHandler struct {
	facade LedgerFacade
}

// NewSelectionHandler creates SelectionHandler instance.
func NewSelectionHandler(facade LedgerFacade) *SelectionHandler {
	return &SelectionHandler{facade: facade}
}

var outcomeMessages = map[model.SelectionOutcome]string{
	model.SelectionCreated:   "service added",
	model.SelectionUpdated:   "plan updated",
	model.SelectionUnchanged: "service already selected with this plan",
}

// Select handles POST /api/user/services.
func (h *SelectionHandler) Select(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.facade.SelectService(c.Request.Context(), principal.UserID, req.ServiceID, req.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Every outcome answers 200; clients tell them apart by the outcome field.
	respond(c, http.StatusOK, dto.NewSelectionResult(res), outcomeMessages[res.Outcome])
}

// List handles GET /api/user/services. Administrators see every entry.
func (h *SelectionHandler) List(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "authentication required")
		return
	}
	entries, err := h.facade.Selections(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewEntryList(entries), "")
}

// UpdateStatus handles PUT /api/admin/selections/:id/status.
func (h *SelectionHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid status: expected one of processing, Booked, completed, cancelled")
		return
	}

	res, err := h.facade.UpdateSelectionStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	if res.Removed {
		respond(c, http.StatusOK, nil, "service completed and removed")
		return
	}
	var data any
	if res.Entry != nil {
		data = dto.NewEntryResponse(res.Entry)
	}
	respond(c, http.StatusOK, data, "status updated")
}
