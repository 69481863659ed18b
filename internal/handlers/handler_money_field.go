package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_field/internal/core/ports/services"
	"github.com/SscSPs/money_field/internal/dto"
	"github.com/SscSPs/money_field/internal/middleware"
	"github.com/gin-gonic/gin"
)

// moneyFieldHandler exposes the component read and write hooks over HTTP.
type moneyFieldHandler struct {
	moneyFieldService portssvc.MoneyFieldSvcFacade
}

func newMoneyFieldHandler(s portssvc.MoneyFieldSvcFacade) *moneyFieldHandler {
	return &moneyFieldHandler{moneyFieldService: s}
}

// RegisterMoneyFieldRoutes registers the /money routes.
func RegisterMoneyFieldRoutes(rg *gin.RouterGroup, moneyFieldService portssvc.MoneyFieldSvcFacade) {
	h := newMoneyFieldHandler(moneyFieldService)

	money := rg.Group("/money")
	{
		money.POST("/format", h.formatState)
		money.POST("/dehydrate", h.dehydrateState)
	}
}

// formatState godoc
// @Summary Format stored minor units
// @Description Renders a stored amount the way the requested component displays it
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatStateRequest true "Component settings and stored state"
// @Success 200 {object} dto.FormatStateResponse
// @Failure 400 {object} map[string]string "Invalid settings"
// @Security BearerAuth
// @Router /money/format [post]
func (h *moneyFieldHandler) formatState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatStateRequest
	if err := bindJSONNumber(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for FormatState", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.moneyFieldService.FormatState(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// dehydrateState godoc
// @Summary Convert a submitted amount to minor units
// @Description Parses user input with the input component's locale rules
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.DehydrateStateRequest true "Component settings and submitted value"
// @Success 200 {object} dto.DehydrateStateResponse
// @Failure 400 {object} map[string]string "Invalid settings"
// @Failure 422 {object} map[string]string "Malformed or out of range amount"
// @Security BearerAuth
// @Router /money/dehydrate [post]
func (h *moneyFieldHandler) dehydrateState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DehydrateStateRequest
	if err := bindJSONNumber(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for DehydrateState", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.moneyFieldService.DehydrateState(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to store amount")
		return
	}
	c.JSON(http.StatusOK, resp)
}
