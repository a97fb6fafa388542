package manager

import (
	"errors"
	"net/http"
	"strconv"

	"hotel/internal/middleware"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/clients", h.Clients)
	rg.GET("/services", h.Services)
	rg.GET("/rooms", h.Rooms)
	rg.GET("/bookings/:id/folio", h.Folio)
	rg.GET("/bookings/:id/folio.xlsx", h.FolioXLSX)
}

func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Clients(c *gin.Context) {
	clients, err := h.service.Clients(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": clients})
}

func (h *Handler) Services(c *gin.Context) {
	search := c.Query("search")
	services, err := h.service.Services(c.Request.Context(), search)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services, "search": search})
}

func (h *Handler) Rooms(c *gin.Context) {
	var q RoomQuery
	_ = c.ShouldBindQuery(&q)

	list, err := h.service.Rooms(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Folio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, err := h.service.Folio(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *Handler) FolioXLSX(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, err := h.service.Folio(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	data, err := RenderFolio(f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+FolioFileName(id)+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter value")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		middleware.LoggerFrom(c).Error().Err(err).Msg("manager request failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
