package handlers

import (
	"errors"
	"net/http"

	apperrors "crestora-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a service error onto the HTTP status it deserves.
// Frozen-round rejections and duplicates are conflicts, state machine
// violations are bad requests, and consistency failures stay 500s.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsFrozenRound(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRoundAlreadyFrozen),
		errors.Is(err, apperrors.ErrRoundEvaluated),
		errors.Is(err, apperrors.ErrRoundDeleteLocked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRoundNotFrozen),
		errors.Is(err, apperrors.ErrNoActiveTeams),
		errors.Is(err, apperrors.ErrNoEvaluations),
		errors.Is(err, apperrors.ErrDuplicateRoundNums):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
