package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/models"
	"vetclinic/internal/responses"
	"vetclinic/internal/services"
)

type AnimalHandler struct {
	animalService *services.AnimalService
}

func NewAnimalHandler(animalService *services.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

func (h *AnimalHandler) Create(c *gin.Context) {
	var a models.Animal
	if err := c.ShouldBindJSON(&a); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.animalService.Create(a); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Animal cadastrado com sucesso!")
}

func (h *AnimalHandler) List(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	animals, err := h.animalService.List(skip, limit, c.Query("especie"))
	if err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Data(c, http.StatusOK, animals)
}

func (h *AnimalHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	var a models.Animal
	if err := c.ShouldBindJSON(&a); err != nil {
		responses.Fail(c, models.TranslateBindingError(err))
		return
	}

	if err := h.animalService.Update(id, a); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Animal atualizado com sucesso!")
}

func (h *AnimalHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	if err := h.animalService.Delete(id); err != nil {
		responses.Fail(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Animal removido com sucesso!")
}
