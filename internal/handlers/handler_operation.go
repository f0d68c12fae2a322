package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/cambiosys/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// operationHandler handles HTTP requests for pricing exchange operations.
type operationHandler struct {
	operationService portssvc.OperationSvcFacade
}

func newOperationHandler(os portssvc.OperationSvcFacade) *operationHandler {
	return &operationHandler{
		operationService: os,
	}
}

// registerOperationRoutes registers the authenticated compute endpoint.
func registerOperationRoutes(rg *gin.RouterGroup, operationService portssvc.OperationSvcFacade) {
	h := newOperationHandler(operationService)

	operations := rg.Group("/operations")
	{
		operations.POST("/compute", h.computeOperation)
	}
}

// registerQuoteRoutes registers the public, rate-limited quote endpoint.
// Quotes are anonymous; client discounts and methods require authentication.
func registerQuoteRoutes(r *gin.Engine, rateLimit gin.HandlerFunc, operationService portssvc.OperationSvcFacade) {
	h := newOperationHandler(operationService)

	quotes := r.Group("/api/v1/quotes")
	{
		quotes.POST("/compute", rateLimit, h.computeQuote)
	}
}

// computeOperation godoc
// @Summary Price an exchange operation
// @Description Resolves the direction of the currency pair and returns the applied rate and destination amount; no state changes
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   operation body dto.ComputeOperationRequest true "Operation parameters"
// @Success 200 {object} dto.ComputeOperationResponse
// @Failure 400 {object} map[string]string "Invalid input or currency pair"
// @Failure 404 {object} map[string]string "No active rate for the foreign currency"
// @Failure 409 {object} map[string]string "Method unavailable"
// @Failure 500 {object} map[string]string "Failed to compute operation"
// @Security BearerAuth
// @Router /operations/compute [post]
func (h *operationHandler) computeOperation(c *gin.Context) {
	var req dto.ComputeOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.compute(c, req)
}

// computeQuote godoc
// @Summary Price an anonymous quote
// @Description Public variant of the compute endpoint; prices at the public rate without client or method parameters
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   operation body dto.ComputeOperationRequest true "Quote parameters"
// @Success 200 {object} dto.ComputeOperationResponse
// @Failure 400 {object} map[string]string "Invalid input or currency pair"
// @Failure 404 {object} map[string]string "No active rate for the foreign currency"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to compute quote"
// @Router /quotes/compute [post]
func (h *operationHandler) computeQuote(c *gin.Context) {
	var req dto.ComputeOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Anonymous pricing only.
	req.ClientID = nil
	req.MethodID = nil
	req.MethodDetailID = nil

	h.compute(c, req)
}

func (h *operationHandler) compute(c *gin.Context, req dto.ComputeOperationRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quote, err := h.operationService.ComputeOperation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrencyPair) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrRateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrMethodUnavailable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute operation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute operation"})
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}
