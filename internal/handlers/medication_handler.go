package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/models"
	"vetclinic/internal/responses"
	"vetclinic/internal/services"
)

type MedicationHandler struct {
	medicationService *services.MedicationService
}

func NewMedicationHandler(medicationService *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{medicationService: medicationService}
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var m models.Medication
	if err := c.ShouldBindJSON(&m); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.medicationService.Create(m); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Medicação registrada com sucesso!")
}

func (h *MedicationHandler) List(c *gin.Context) {
	medications, err := h.medicationService.ListAll()
	if err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Data(c, http.StatusOK, medications)
}
