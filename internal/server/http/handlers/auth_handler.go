package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/server/http/dto"
	"github.com/polkiloo/servicebooking/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			respondFail(c, http.StatusConflict, "email already registered")
			return
		}
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	respond(c, http.StatusCreated, dto.NewAuthResponse(user, token), "registered")
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			respondFail(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	respond(c, http.StatusOK, dto.NewAuthResponse(user, token), "logged in")
}
