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
	"github.com/shopspring/decimal"
)

// stockHandler handles HTTP requests related to stock locations and holdings.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
	}
}

// registerStockRoutes registers routes for locations, stock and coverage.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	locations := rg.Group("/locations")
	{
		locations.POST("", h.createLocation)
		locations.GET("", h.listLocations)
		locations.GET("/:locationID", h.getLocation)
		locations.DELETE("/:locationID", h.deactivateLocation)
		locations.GET("/:locationID/stock", h.listStock)
		locations.GET("/:locationID/movements", h.listMovements)
	}

	terminals := rg.Group("/terminals")
	{
		terminals.GET("/:terminalID/coverage", h.terminalCoverage)
		terminals.GET("/:terminalID/stock", h.terminalStock)
	}
}

// createLocation godoc
// @Summary Register a stock location
// @Description Creates a vault or terminal; only one vault may exist
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Vault already exists"
// @Failure 500 {object} map[string]string "Failed to create location"
// @Security BearerAuth
// @Router /locations [post]
func (h *stockHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	location, err := h.stockService.CreateLocation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create location", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// getLocation godoc
// @Summary Get a location by ID
// @Tags stock
// @Produce  json
// @Param   locationID path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Failed to retrieve location"
// @Security BearerAuth
// @Router /locations/{locationID} [get]
func (h *stockHandler) getLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")

	location, err := h.stockService.GetLocationByID(c.Request.Context(), locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			logger.Error("Failed to get location", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve location"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// listLocations godoc
// @Summary List stock locations
// @Tags stock
// @Produce  json
// @Success 200 {array} dto.LocationResponse
// @Failure 500 {object} map[string]string "Failed to list locations"
// @Security BearerAuth
// @Router /locations [get]
func (h *stockHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	locations, err := h.stockService.ListLocations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list locations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLocationResponse(locations))
}

// deactivateLocation godoc
// @Summary Deactivate a location
// @Description Marks a terminal inactive; the vault cannot be deactivated
// @Tags stock
// @Produce  json
// @Param   locationID path string true "Location ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 409 {object} map[string]string "Location is the vault"
// @Failure 500 {object} map[string]string "Failed to deactivate location"
// @Security BearerAuth
// @Router /locations/{locationID} [delete]
func (h *stockHandler) deactivateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.stockService.DeactivateLocation(c.Request.Context(), locationID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to deactivate location", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate location"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listStock godoc
// @Summary List stock at a location
// @Description Retrieves every denomination quantity held at a location
// @Tags stock
// @Produce  json
// @Param   locationID path string true "Location ID"
// @Success 200 {array} dto.StockEntryResponse
// @Failure 500 {object} map[string]string "Failed to list stock"
// @Security BearerAuth
// @Router /locations/{locationID}/stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")

	entries, err := h.stockService.ListStock(c.Request.Context(), locationID)
	if err != nil {
		logger.Error("Failed to list stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockEntryResponse(entries))
}

// listMovements godoc
// @Summary List movements at a location
// @Tags stock
// @Produce  json
// @Param   locationID path string true "Location ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.MovementResponse
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Security BearerAuth
// @Router /locations/{locationID}/movements [get]
func (h *stockHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	movements, err := h.stockService.ListMovementsByLocation(c.Request.Context(), locationID, limit, offset)
	if err != nil {
		logger.Error("Failed to list movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementResponse(movements))
}

// terminalCoverage godoc
// @Summary Check terminal payout coverage
// @Description Reports whether the terminal can pay out the exact amount in the currency with some denomination combination
// @Tags stock
// @Produce  json
// @Param   terminalID path string true "Terminal ID"
// @Param   currency query string true "Currency Code"
// @Param   amount query string true "Amount to cover"
// @Success 200 {object} dto.CoverageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Terminal not found"
// @Failure 500 {object} map[string]string "Failed to check coverage"
// @Security BearerAuth
// @Router /terminals/{terminalID}/coverage [get]
func (h *stockHandler) terminalCoverage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	terminalID := c.Param("terminalID")
	currencyCode := c.Query("currency")

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	canCover, err := h.stockService.TerminalCanCover(c.Request.Context(), terminalID, currencyCode, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Terminal not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to check coverage", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check coverage"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CoverageResponse{
		LocationID:   terminalID,
		CurrencyCode: currencyCode,
		Amount:       amount,
		CanCover:     canCover,
	})
}

// terminalStock godoc
// @Summary List stock at a terminal
// @Tags stock
// @Produce  json
// @Param   terminalID path string true "Terminal ID"
// @Success 200 {array} dto.StockEntryResponse
// @Failure 500 {object} map[string]string "Failed to list stock"
// @Security BearerAuth
// @Router /terminals/{terminalID}/stock [get]
func (h *stockHandler) terminalStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	terminalID := c.Param("terminalID")

	entries, err := h.stockService.ListStock(c.Request.Context(), terminalID)
	if err != nil {
		logger.Error("Failed to list terminal stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockEntryResponse(entries))
}
