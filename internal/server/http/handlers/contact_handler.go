package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/servicebooking/internal/server/http/dto"
	"github.com/polkiloo/servicebooking/internal/server/http/middleware"
)

// ContactHandler serves the contact form.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler creates ContactHandler instance.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Submit handles POST /api/user/contacts.
func (h *ContactHandler) Submit(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	msg, err := h.facade.SubmitContact(c.Request.Context(), principal.UserID, req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.NewContactResponse(msg), "your message has been sent")
}

// List handles GET /api/admin/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.facade.Contacts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewContactList(msgs), "")
}
