package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/apperrors"
)

const defaultListLimit = 10

// parsePagination reads the skip/limit query params with the same
// defaults and bounds as the API contract: skip >= 0, limit >= 1.
func parsePagination(c *gin.Context) (int, int, error) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, apperrors.Validation("skip", "ge=0")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 1 {
		return 0, 0, apperrors.Validation("limit", "ge=1")
	}

	return skip, limit, nil
}

// parseIDParam reads the numeric id path parameter.
func parseIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperrors.Validation("id", "integer")
	}
	return id, nil
}
