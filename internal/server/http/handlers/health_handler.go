package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports whether the store is reachable.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		respondFail(c, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	respond(c, http.StatusOK, gin.H{"status": "ok"}, "")
}
