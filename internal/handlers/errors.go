package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code and writes it.
// Client errors carry the error text; server errors carry only failMsg.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMalformedAmount), errors.Is(err, apperrors.ErrOutOfRange):
		logger.Warn("Unprocessable amount", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
