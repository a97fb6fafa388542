package services

import (
	"net/http"

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

// RegisterRoutes expects rg to run OptionalJWTAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.List)
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("list services failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, out)
}
