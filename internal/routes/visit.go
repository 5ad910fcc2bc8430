package routes

import (
	"github.com/gin-gonic/gin"

	"vetclinic/internal/handlers"
)

type VisitRoutes struct {
	visitHandler      *handlers.VisitHandler
	medicationHandler *handlers.MedicationHandler
}

func NewVisitRoutes(visitHandler *handlers.VisitHandler, medicationHandler *handlers.MedicationHandler) *VisitRoutes {
	return &VisitRoutes{visitHandler: visitHandler, medicationHandler: medicationHandler}
}

func (r *VisitRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/atendimentos/", r.visitHandler.Create)
	router.GET("/atendimentos/", r.visitHandler.List)

	router.POST("/medicacoes/", r.medicationHandler.Create)
	router.GET("/medicacoes/", r.medicationHandler.List)
}
