package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/models"
	"vetclinic/internal/responses"
	"vetclinic/internal/services"
)

type GuardianHandler struct {
	guardianService *services.GuardianService
}

func NewGuardianHandler(guardianService *services.GuardianService) *GuardianHandler {
	return &GuardianHandler{guardianService: guardianService}
}

func (h *GuardianHandler) Create(c *gin.Context) {
	var g models.Guardian
	if err := c.ShouldBindJSON(&g); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.guardianService.Create(g); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Responsável cadastrado com sucesso!")
}

func (h *GuardianHandler) List(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	guardians, err := h.guardianService.List(skip, limit)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Data(c, http.StatusOK, guardians)
}

func (h *GuardianHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	var g models.Guardian
	if err := c.ShouldBindJSON(&g); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.guardianService.Update(id, g); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Responsável atualizado com sucesso!")
}

func (h *GuardianHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	if err := h.guardianService.Delete(id); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Responsável removido com sucesso!")
}
