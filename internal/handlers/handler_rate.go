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

// rateHandler handles HTTP requests related to rate configurations.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to rate configurations.
// Rates are addressed by currency; mutations resolve the active rate first.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.createRate)
		rates.GET("", h.listActiveRates)
		rates.GET("/:currency", h.getActiveRate)
		rates.PUT("/:currency", h.updateRate)
		rates.DELETE("/:currency", h.deactivateRate)
		rates.GET("/:currency/history", h.listRateHistory)
	}
}

// createRate godoc
// @Summary Create a rate configuration
// @Description Creates the rate parameters of a foreign currency and its first history snapshot
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateRateRequest true "Rate parameters"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Active rate already exists"
// @Failure 500 {object} map[string]string "Failed to create rate"
// @Security BearerAuth
// @Router /rates [post]
func (h *rateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreateRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidRate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to create rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate"})
		}
		return
	}

	logger.Info("Rate created", slog.String("currency_code", rate.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToRateResponse(rate))
}

// getActiveRate godoc
// @Summary Get the active rate of a currency
// @Description Retrieves the current rate configuration of a foreign currency
// @Tags rates
// @Produce  json
// @Param   currency path string true "Currency Code"
// @Success 200 {object} dto.RateResponse
// @Failure 404 {object} map[string]string "No active rate for currency"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Security BearerAuth
// @Router /rates/{currency} [get]
func (h *rateHandler) getActiveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currency")

	rate, err := h.rateService.GetActiveRate(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active rate for currency"})
		} else {
			logger.Error("Failed to get active rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// listActiveRates godoc
// @Summary List all active rates
// @Description Retrieves the active rate configuration of every foreign currency
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.RateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) listActiveRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListActiveRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list active rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// updateRate godoc
// @Summary Update the active rate of a currency
// @Description Applies a partial mutation to the active rate and appends a history snapshot
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   currency path string true "Currency Code"
// @Param   rate body dto.UpdateRateRequest true "Fields to change"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No active rate for currency"
// @Failure 500 {object} map[string]string "Failed to update rate"
// @Security BearerAuth
// @Router /rates/{currency} [put]
func (h *rateHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currency")

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	active, err := h.rateService.GetActiveRate(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active rate for currency"})
		} else {
			logger.Error("Failed to resolve active rate for update", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate"})
		}
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), active.RateID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidRate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to update rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate"})
		}
		return
	}

	logger.Info("Rate updated", slog.String("currency_code", currencyCode))
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// deactivateRate godoc
// @Summary Deactivate the active rate of a currency
// @Description Marks the active rate configuration inactive; pricing for the currency stops
// @Tags rates
// @Produce  json
// @Param   currency path string true "Currency Code"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "No active rate for currency"
// @Failure 500 {object} map[string]string "Failed to deactivate rate"
// @Security BearerAuth
// @Router /rates/{currency} [delete]
func (h *rateHandler) deactivateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currency")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	active, err := h.rateService.GetActiveRate(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active rate for currency"})
		} else {
			logger.Error("Failed to resolve active rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate rate"})
		}
		return
	}

	if err := h.rateService.DeactivateRate(c.Request.Context(), active.RateID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to deactivate rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate rate"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listRateHistory godoc
// @Summary List rate history
// @Description Retrieves the newest rate snapshots of a currency
// @Tags rates
// @Produce  json
// @Param   currency path string true "Currency Code"
// @Param   limit query int false "Max snapshots to return"
// @Success 200 {array} dto.RateHistoryResponse
// @Failure 500 {object} map[string]string "Failed to list rate history"
// @Security BearerAuth
// @Router /rates/{currency}/history [get]
func (h *rateHandler) listRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currency")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	history, err := h.rateService.ListRateHistory(c.Request.Context(), currencyCode, limit)
	if err != nil {
		logger.Error("Failed to list rate history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rate history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateHistoryResponse(history))
}
