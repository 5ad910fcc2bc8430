package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/models"
	"vetclinic/internal/responses"
	"vetclinic/internal/services"
)

type VeterinarianHandler struct {
	vetService *services.VeterinarianService
}

func NewVeterinarianHandler(vetService *services.VeterinarianService) *VeterinarianHandler {
	return &VeterinarianHandler{vetService: vetService}
}

func (h *VeterinarianHandler) Create(c *gin.Context) {
	var v models.Veterinarian
	if err := c.ShouldBindJSON(&v); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.vetService.Create(v); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Veterinário cadastrado com sucesso!")
}

func (h *VeterinarianHandler) List(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	vets, err := h.vetService.List(skip, limit, c.Query("especialidade"))
	if err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Data(c, http.StatusOK, vets)
}

func (h *VeterinarianHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	var v models.Veterinarian
	if err := c.ShouldBindJSON(&v); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.vetService.Update(id, v); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Veterinário atualizado com sucesso!")
}

func (h *VeterinarianHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	if err := h.vetService.Delete(id); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Veterinário removido com sucesso!")
}
