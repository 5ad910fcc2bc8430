package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/models"
	"vetclinic/internal/responses"
	"vetclinic/internal/services"
)

type VisitHandler struct {
	visitService *services.VisitService
}

func NewVisitHandler(visitService *services.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

func (h *VisitHandler) Create(c *gin.Context) {
	var v models.Visit
	if err := c.ShouldBindJSON(&v); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.visitService.Create(v); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Atendimento registrado com sucesso!")
}

func (h *VisitHandler) List(c *gin.Context) {
	visits, err := h.visitService.ListAll()
	if err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Data(c, http.StatusOK, visits)
}
