package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/servicebooking/internal/server/http/dto"
)

// ServiceHandler serves the catalog.
type ServiceHandler struct {
	facade CatalogFacade
}

// NewServiceHandler creates ServiceHandler instance.
func NewServiceHandler(facade CatalogFacade) *ServiceHandler {
	return &ServiceHandler{facade: facade}
}

// List handles GET /api/services.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.facade.Services(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewServiceList(services), "")
}

// Get handles GET /api/services/:id.
func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.facade.Service(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewServiceResponse(svc), "")
}

// Create handles POST /api/admin/services.
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	svc, err := h.facade.CreateService(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.NewServiceResponse(svc), "service created")
}

// Update handles PUT /api/admin/services/:id.
func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	svc, err := h.facade.UpdateService(c.Request.Context(), c.Param("id"), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewServiceResponse(svc), "service updated")
}

// Delete handles DELETE /api/admin/services/:id.
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "service deleted")
}
