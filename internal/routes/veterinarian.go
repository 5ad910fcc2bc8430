package routes

import (
	"github.com/gin-gonic/gin"

	"vetclinic/internal/handlers"
)

type VeterinarianRoutes struct {
	vetHandler *handlers.VeterinarianHandler
}

func NewVeterinarianRoutes(vetHandler *handlers.VeterinarianHandler) *VeterinarianRoutes {
	return &VeterinarianRoutes{vetHandler: vetHandler}
}

func (r *VeterinarianRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/veterinarios/", r.vetHandler.Create)
	router.GET("/veterinarios/", r.vetHandler.List)
	router.PUT("/veterinarios/:id", r.vetHandler.Update)
	router.DELETE("/veterinarios/:id", r.vetHandler.Delete)
}
