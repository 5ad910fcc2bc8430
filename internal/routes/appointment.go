package routes

import (
	"github.com/gin-gonic/gin"

	"vetclinic/internal/handlers"
)

type AppointmentRoutes struct {
	appointmentHandler *handlers.AppointmentHandler
}

func NewAppointmentRoutes(appointmentHandler *handlers.AppointmentHandler) *AppointmentRoutes {
	return &AppointmentRoutes{appointmentHandler: appointmentHandler}
}

func (r *AppointmentRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/consultas/", r.appointmentHandler.Create)
	router.GET("/consultas/", r.appointmentHandler.List)
	router.GET("/agenda/", r.appointmentHandler.Agenda)
}
