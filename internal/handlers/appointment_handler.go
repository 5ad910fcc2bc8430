package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/models"
	"vetclinic/internal/responses"
	"vetclinic/internal/services"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var a models.Appointment
	if err := c.ShouldBindJSON(&a); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.appointmentService.Create(a); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Consulta agendada com sucesso!")
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.appointmentService.ListAll()
	if err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Data(c, http.StatusOK, appointments)
}

// Agenda is the public read-only schedule projection.
func (h *AppointmentHandler) Agenda(c *gin.Context) {
	agenda, err := h.appointmentService.Agenda()
	if err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Data(c, http.StatusOK, agenda)
}
