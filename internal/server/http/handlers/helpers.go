package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/server/http/dto"
)

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.OK(data, message))
}

func respondFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Fail(message))
}

// respondError maps domain errors to HTTP statuses. Unclassified errors are
// attached to the context for the request logger and reported as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		respondFail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainErrors.ErrInvalidPlan),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidIdentifier),
		errors.Is(err, domainErrors.ErrInvalidService),
		errors.Is(err, domainErrors.ErrInvalidContent),
		errors.Is(err, domainErrors.ErrInvalidCredentials):
		respondFail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondFail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainErrors.ErrForbidden):
		respondFail(c, http.StatusForbidden, err.Error())
	default:
		_ = c.Error(err)
		respondFail(c, http.StatusInternalServerError, "internal server error")
	}
}

func respondBindError(c *gin.Context, err error) {
	respondFail(c, http.StatusBadRequest, "invalid request: "+err.Error())
}
