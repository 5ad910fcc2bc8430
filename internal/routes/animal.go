package routes

import (
	"github.com/gin-gonic/gin"

	"vetclinic/internal/handlers"
)

type AnimalRoutes struct {
	animalHandler *handlers.AnimalHandler
}

func NewAnimalRoutes(animalHandler *handlers.AnimalHandler) *AnimalRoutes {
	return &AnimalRoutes{animalHandler: animalHandler}
}

func (r *AnimalRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/animais/", r.animalHandler.Create)
	router.GET("/animais/", r.animalHandler.List)
	router.PUT("/animais/:id", r.animalHandler.Update)
	router.DELETE("/animais/:id", r.animalHandler.Delete)
}
