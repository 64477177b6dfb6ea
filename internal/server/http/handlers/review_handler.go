package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/servicebooking/internal/server/http/dto"
	"github.com/polkiloo/servicebooking/internal/server/http/middleware"
)

// ReviewHandler serves platform reviews.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler creates ReviewHandler instance.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Submit handles POST /api/user/reviews. A repeated submission replaces the
// user's earlier review and also answers 200.
func (h *ReviewHandler) Submit(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	summary, created, err := h.facade.SubmitReview(c.Request.Context(), principal.UserID, req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	msg := "review updated"
	if created {
		msg = "review submitted"
	}
	respond(c, http.StatusOK, dto.NewReviewSummary(summary), msg)
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	summary, err := h.facade.Reviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewReviewSummary(summary), "")
}
