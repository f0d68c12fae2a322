package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/cambiosys/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profitHandler handles HTTP requests for the profit read model.
type profitHandler struct {
	profitService portssvc.ProfitReaderSvc
}

func newProfitHandler(ps portssvc.ProfitReaderSvc) *profitHandler {
	return &profitHandler{
		profitService: ps,
	}
}

// registerProfitRoutes registers routes related to profit entries.
func registerProfitRoutes(rg *gin.RouterGroup, profitService portssvc.ProfitReaderSvc) {
	h := newProfitHandler(profitService)

	profits := rg.Group("/profits")
	{
		profits.GET("", h.listProfitsByPeriod)
		profits.GET("/:transactionID", h.getProfit)
	}
}

// getProfit godoc
// @Summary Get the profit entry of a transaction
// @Tags profits
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.ProfitResponse
// @Failure 404 {object} map[string]string "Profit entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve profit"
// @Security BearerAuth
// @Router /profits/{transactionID} [get]
func (h *profitHandler) getProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	profit, err := h.profitService.GetProfitByTransactionID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profit entry not found"})
		} else {
			logger.Error("Failed to get profit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitResponse(profit))
}

// listProfitsByPeriod godoc
// @Summary List profits for a calendar month
// @Description Retrieves the profit entries of one month with their total
// @Tags profits
// @Produce  json
// @Param   year query int true "Year"
// @Param   month query int true "Month (1-12)"
// @Success 200 {object} dto.PeriodProfitResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to list profits"
// @Security BearerAuth
// @Router /profits [get]
func (h *profitHandler) listProfitsByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	profits, err := h.profitService.ListProfitsByPeriod(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list profits", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list profits"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodProfitResponse(year, month, profits))
}
