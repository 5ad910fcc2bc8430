package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/apperrors"
)

// Message writes a success envelope with a human-readable message.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Data writes the requested payload as-is (entity lists, projections).
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail maps an error to its HTTP status and writes a detail envelope.
// ValidationError and ConflictError surface as 400, NotFoundError as
// 404, AuthError as 401; anything else is a 500.
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	detail := "Internal server error"

	var (
		verr *apperrors.ValidationError
		cerr *apperrors.ConflictError
		nerr *apperrors.NotFoundError
		aerr *apperrors.AuthError
	)
	switch {
	case errors.As(err, &verr):
		status, detail = http.StatusBadRequest, verr.Error()
	case errors.As(err, &cerr):
		status, detail = http.StatusBadRequest, cerr.Error()
	case errors.As(err, &nerr):
		status, detail = http.StatusNotFound, nerr.Error()
	case errors.As(err, &aerr):
		status, detail = http.StatusUnauthorized, aerr.Error()
	}

	c.JSON(status, gin.H{"detail": detail})
}
