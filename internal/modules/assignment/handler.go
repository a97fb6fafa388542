package assignment

import (
	"errors"
	"net/http"

	"hotel/internal/access"
	"hotel/internal/middleware"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assign", h.Form)
	rg.POST("/assign", h.Assign)
}

func (h *Handler) Form(c *gin.Context) {
	data, err := h.service.FormData(c.Request.Context())
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("assign form failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, data)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.AssignService(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccessDenied):
			response.Error(c, http.StatusForbidden, "ACCESS_DENIED", access.DeniedMessage)
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"guest_id, service_id and service_date are required; quantity must be at least 1")
		case errors.Is(err, ErrGuestNotFound):
			response.Error(c, http.StatusNotFound, "GUEST_NOT_FOUND", "Guest not found")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		case errors.Is(err, ErrNoActiveBooking):
			response.Error(c, http.StatusNotFound, "NO_ACTIVE_BOOKING", "Guest has no active booking for this date")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "The assignment changed concurrently, please retry")
		default:
			middleware.LoggerFrom(c).Error().Err(err).Msg("assign service failed")
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	status := http.StatusOK
	if res.Disposition == Created {
		status = http.StatusCreated
	}
	response.SuccessWithMessage(c, status, res.Disposition.Message(), res)
}
