package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated account identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// PathID parses the numeric :id path parameter.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondError translates core error kinds into HTTP statuses. The
// error text carries the descriptive payload (which product, what
// shortfall); the core itself produces no user-facing copy.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidArgument):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrProductUnavailable),
		errors.Is(err, domainErrors.ErrInsufficientStock),
		errors.Is(err, domainErrors.ErrInvalidTransition):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		c.Status(status)
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
