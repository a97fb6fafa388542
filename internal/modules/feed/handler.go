package feed

import (
	"net/http"
	"strings"

	"hotel/internal/access"
	"hotel/internal/domain"
	"hotel/internal/metrics"
	jwtsvc "hotel/internal/pkg/jwt"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	jwt      *jwtsvc.Service
	upgrader websocket.Upgrader
}

// NewHandler builds the websocket endpoint. An empty allowedOrigins accepts
// any origin.
func NewHandler(hub *Hub, jwt *jwtsvc.Service, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Handler{
		hub: hub,
		jwt: jwt,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.Connect)
}

// Connect upgrades to a websocket for staff. Browsers cannot set headers on
// websocket requests, so the token may also come as ?token=.
func (h *Handler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	}
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Token is required")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}
	if err := access.Authorize(domain.UserRole(claims.Role), access.ManagerArea...); err != nil {
		metrics.IncAccessDenied("feed")
		response.Error(c, http.StatusForbidden, "ACCESS_DENIED", access.DeniedMessage)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.hub.log.Warn().Err(err).Msg("feed: websocket upgrade failed")
		return
	}
	h.hub.ServeWS(conn, claims.UserID)
}
