package routes

import (
	"github.com/gin-gonic/gin"

	"vetclinic/internal/handlers"
	"vetclinic/internal/middlewares"
	"vetclinic/internal/services"
)

type AuthRoutes struct {
	authHandler *handlers.AuthHandler
	authService *services.AuthService
}

func NewAuthRoutes(authHandler *handlers.AuthHandler, authService *services.AuthService) *AuthRoutes {
	return &AuthRoutes{authHandler: authHandler, authService: authService}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/token", r.authHandler.Login)
	router.GET("/users/me", middlewares.Authenticate(r.authService), r.authHandler.Me)
	router.GET("/roles/:role", r.authHandler.RolePermissions)
}
