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

// movementHandler handles HTTP requests related to stock movements.
type movementHandler struct {
	stockService portssvc.StockSvcFacade
}

func newMovementHandler(ss portssvc.StockSvcFacade) *movementHandler {
	return &movementHandler{
		stockService: ss,
	}
}

// registerMovementRoutes registers routes related to stock movements.
func registerMovementRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newMovementHandler(stockService)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("/:movementID", h.getMovement)
		movements.POST("/:movementID/finalize", h.finalizeMovement)
		movements.POST("/:movementID/cancel", h.cancelMovement)
	}
}

// createMovement godoc
// @Summary Record a stock movement
// @Description Records a cash flow event and applies its stock deltas atomically; client withdrawals allocate the payout breakdown automatically
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movement body dto.CreateMovementRequest true "Movement data"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input, denomination mismatch or amount mismatch"
// @Failure 404 {object} map[string]string "Location or currency not found"
// @Failure 409 {object} map[string]string "Insufficient stock or duplicate movement"
// @Failure 500 {object} map[string]string "Failed to create movement"
// @Security BearerAuth
// @Router /movements [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movement, err := h.stockService.CreateMovement(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicateMovement):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDenominationMismatch), errors.Is(err, apperrors.ErrAmountMismatch), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movement"})
		}
		return
	}

	logger.Info("Movement created", slog.String("movement_id", movement.MovementID), slog.String("type", string(movement.Type)))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// getMovement godoc
// @Summary Get a movement by ID
// @Tags movements
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Failed to retrieve movement"
// @Security BearerAuth
// @Router /movements/{movementID} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	movement, err := h.stockService.GetMovementByID(c.Request.Context(), movementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else {
			logger.Error("Failed to get movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// finalizeMovement godoc
// @Summary Finalize a movement
// @Description Seals an in-progress movement; finalized movements can no longer be cancelled
// @Tags movements
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 409 {object} map[string]string "Movement is not in progress"
// @Failure 500 {object} map[string]string "Failed to finalize movement"
// @Security BearerAuth
// @Router /movements/{movementID}/finalize [post]
func (h *movementHandler) finalizeMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movement, err := h.stockService.FinalizeMovement(c.Request.Context(), movementID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to finalize movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize movement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// cancelMovement godoc
// @Summary Cancel a movement
// @Description Cancels a movement and restores its stock deltas; cancelling an already-cancelled movement is a no-op
// @Tags movements
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 409 {object} map[string]string "Movement is finalized"
// @Failure 500 {object} map[string]string "Failed to cancel movement"
// @Security BearerAuth
// @Router /movements/{movementID}/cancel [post]
func (h *movementHandler) cancelMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movement, err := h.stockService.CancelMovement(c.Request.Context(), movementID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to cancel movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel movement"})
		}
		return
	}

	logger.Info("Movement cancelled", slog.String("movement_id", movementID))
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}
