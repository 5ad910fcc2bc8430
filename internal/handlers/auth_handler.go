package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/apperrors"
	"vetclinic/internal/middlewares"
	"vetclinic/internal/responses"
	"vetclinic/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /token. Credentials arrive form-encoded, matching
// the OAuth2 password flow.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, apperrors.Auth("Invalid credentials"))
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me handles GET /users/me for an authenticated request.
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(middlewares.UsernameKey)

	permissions, err := h.authService.UserPermissions(username)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"roles":    permissions,
	})
}

// RolePermissions handles GET /roles/:role against the static table.
func (h *AuthHandler) RolePermissions(c *gin.Context) {
	role := c.Param("role")
	c.JSON(http.StatusOK, gin.H{
		"role":        role,
		"permissions": h.authService.RolePermissions(role),
	})
}
