package handlers

import (
	"errors"
	"net/http"

	apperrors "conservation-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps the error taxonomy to HTTP status codes: validation
// errors are 400, missing entities 404, conflicts 409, referential
// violations 422, anything else 500.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsReferential(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
