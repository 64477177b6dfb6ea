package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/server/http/dto"
	"github.com/polkiloo/servicebooking/internal/server/http/middleware"
)

// AccountHandler lets users edit their own account.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler creates AccountHandler instance.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// Update handles PUT /api/user/account.
func (h *AccountHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.facade.UpdateAccount(c.Request.Context(), principal.UserID, req.ToModel())
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			respondFail(c, http.StatusConflict, "email already in use")
			return
		}
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewUserResponse(user), "account updated")
}
