package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/server/http/dto"
	"github.com/saxtrade/marketplace/internal/server/http/middleware"
)

// AuthHandler manages registration and login endpoints.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Login, req.Password, req.Company, model.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}
