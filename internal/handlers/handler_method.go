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

// methodHandler handles HTTP requests related to financial methods and their
// details.
type methodHandler struct {
	methodService portssvc.MethodSvcFacade
}

func newMethodHandler(ms portssvc.MethodSvcFacade) *methodHandler {
	return &methodHandler{
		methodService: ms,
	}
}

// registerMethodRoutes registers routes related to financial methods.
func registerMethodRoutes(rg *gin.RouterGroup, methodService portssvc.MethodSvcFacade) {
	h := newMethodHandler(methodService)

	methods := rg.Group("/methods")
	{
		methods.POST("", h.createMethod)
		methods.GET("", h.listMethods)
		methods.GET("/:methodID", h.getMethod)
		methods.DELETE("/:methodID", h.deactivateMethod)
		methods.POST("/:methodID/reactivate", h.reactivateMethod)
		methods.GET("/:methodID/details", h.listMethodDetails)
	}

	details := rg.Group("/method-details")
	{
		details.POST("", h.createMethodDetail)
		details.GET("/:detailID", h.getMethodDetail)
		details.DELETE("/:detailID", h.deactivateMethodDetail)
	}
}

// createMethod godoc
// @Summary Create a financial method
// @Description Creates a payment channel (bank transfer, wallet, card, cash, check) with its commission percentage
// @Tags methods
// @Accept  json
// @Produce  json
// @Param   method body dto.CreateFinancialMethodRequest true "Method details"
// @Success 201 {object} dto.FinancialMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create method"
// @Security BearerAuth
// @Router /methods [post]
func (h *methodHandler) createMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFinancialMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	method, err := h.methodService.CreateMethod(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create method"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFinancialMethodResponse(method))
}

// getMethod godoc
// @Summary Get a financial method by ID
// @Tags methods
// @Produce  json
// @Param   methodID path string true "Method ID"
// @Success 200 {object} dto.FinancialMethodResponse
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 500 {object} map[string]string "Failed to retrieve method"
// @Security BearerAuth
// @Router /methods/{methodID} [get]
func (h *methodHandler) getMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")

	method, err := h.methodService.GetMethodByID(c.Request.Context(), methodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
		} else {
			logger.Error("Failed to get method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve method"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialMethodResponse(method))
}

// listMethods godoc
// @Summary List financial methods
// @Tags methods
// @Produce  json
// @Success 200 {array} dto.FinancialMethodResponse
// @Failure 500 {object} map[string]string "Failed to list methods"
// @Security BearerAuth
// @Router /methods [get]
func (h *methodHandler) listMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.methodService.ListMethods(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list methods"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFinancialMethodResponse(methods))
}

// deactivateMethod godoc
// @Summary Deactivate a financial method
// @Description Marks a method inactive and cascades the deactivation to its active details
// @Tags methods
// @Produce  json
// @Param   methodID path string true "Method ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 500 {object} map[string]string "Failed to deactivate method"
// @Security BearerAuth
// @Router /methods/{methodID} [delete]
func (h *methodHandler) deactivateMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.methodService.DeactivateMethod(c.Request.Context(), methodID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
		} else {
			logger.Error("Failed to deactivate method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate method"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// reactivateMethod godoc
// @Summary Reactivate a financial method
// @Description Marks a method active again, restoring only the details that the deactivation cascade took down
// @Tags methods
// @Produce  json
// @Param   methodID path string true "Method ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 500 {object} map[string]string "Failed to reactivate method"
// @Security BearerAuth
// @Router /methods/{methodID}/reactivate [post]
func (h *methodHandler) reactivateMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.methodService.ReactivateMethod(c.Request.Context(), methodID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
		} else {
			logger.Error("Failed to reactivate method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reactivate method"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// createMethodDetail godoc
// @Summary Add a method detail
// @Description Adds a concrete instrument (account, wallet, card) under an active method
// @Tags methods
// @Accept  json
// @Produce  json
// @Param   detail body dto.CreateMethodDetailRequest true "Detail data"
// @Success 201 {object} dto.MethodDetailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 409 {object} map[string]string "Method is inactive"
// @Failure 500 {object} map[string]string "Failed to create detail"
// @Security BearerAuth
// @Router /method-details [post]
func (h *methodHandler) createMethodDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMethodDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.methodService.CreateMethodDetail(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
		} else if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrMethodUnavailable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create method detail", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create detail"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMethodDetailResponse(detail))
}

// getMethodDetail godoc
// @Summary Get a method detail by ID
// @Tags methods
// @Produce  json
// @Param   detailID path string true "Detail ID"
// @Success 200 {object} dto.MethodDetailResponse
// @Failure 404 {object} map[string]string "Detail not found"
// @Failure 500 {object} map[string]string "Failed to retrieve detail"
// @Security BearerAuth
// @Router /method-details/{detailID} [get]
func (h *methodHandler) getMethodDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	detailID := c.Param("detailID")

	detail, err := h.methodService.GetMethodDetailByID(c.Request.Context(), detailID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Detail not found"})
		} else {
			logger.Error("Failed to get method detail", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve detail"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMethodDetailResponse(detail))
}

// listMethodDetails godoc
// @Summary List the details of a method
// @Tags methods
// @Produce  json
// @Param   methodID path string true "Method ID"
// @Success 200 {array} dto.MethodDetailResponse
// @Failure 500 {object} map[string]string "Failed to list details"
// @Security BearerAuth
// @Router /methods/{methodID}/details [get]
func (h *methodHandler) listMethodDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")

	details, err := h.methodService.ListMethodDetails(c.Request.Context(), methodID)
	if err != nil {
		logger.Error("Failed to list method details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list details"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMethodDetailResponse(details))
}

// deactivateMethodDetail godoc
// @Summary Deactivate a method detail
// @Description Marks a single detail inactive without touching its method
// @Tags methods
// @Produce  json
// @Param   detailID path string true "Detail ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Detail not found"
// @Failure 500 {object} map[string]string "Failed to deactivate detail"
// @Security BearerAuth
// @Router /method-details/{detailID} [delete]
func (h *methodHandler) deactivateMethodDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	detailID := c.Param("detailID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.methodService.DeactivateMethodDetail(c.Request.Context(), detailID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Detail not found"})
		} else {
			logger.Error("Failed to deactivate method detail", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate detail"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
