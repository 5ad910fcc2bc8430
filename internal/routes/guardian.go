package routes

import (
	"github.com/gin-gonic/gin"

	"vetclinic/internal/handlers"
)

type GuardianRoutes struct {
	guardianHandler *handlers.GuardianHandler
}

func NewGuardianRoutes(guardianHandler *handlers.GuardianHandler) *GuardianRoutes {
	return &GuardianRoutes{guardianHandler: guardianHandler}
}

func (r *GuardianRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/responsaveis/", r.guardianHandler.Create)
	router.GET("/responsaveis/", r.guardianHandler.List)
	router.PUT("/responsaveis/:id", r.guardianHandler.Update)
	router.DELETE("/responsaveis/:id", r.guardianHandler.Delete)
}
