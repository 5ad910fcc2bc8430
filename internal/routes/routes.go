package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/handlers"
	"vetclinic/internal/services"
)

func RegisterRoutes(
	router *gin.Engine,
	authService *services.AuthService,
	guardianHandler *handlers.GuardianHandler,
	animalHandler *handlers.AnimalHandler,
	vetHandler *handlers.VeterinarianHandler,
	appointmentHandler *handlers.AppointmentHandler,
	visitHandler *handlers.VisitHandler,
	medicationHandler *handlers.MedicationHandler,
	authHandler *handlers.AuthHandler,
) {
	api := router.Group("")

	NewGuardianRoutes(guardianHandler).RegisterRoutes(api)
	NewAnimalRoutes(animalHandler).RegisterRoutes(api)
	NewVeterinarianRoutes(vetHandler).RegisterRoutes(api)
	NewAppointmentRoutes(appointmentHandler).RegisterRoutes(api)
	NewVisitRoutes(visitHandler, medicationHandler).RegisterRoutes(api)
	NewAuthRoutes(authHandler, authService).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
