// Package server assembles the HTTP application from its modules.
package server

import (
	"net/http"

	"hotel/internal/access"
	"hotel/internal/metrics"
	"hotel/internal/middleware"
	"hotel/internal/modules/assignment"
	"hotel/internal/modules/auth"
	"hotel/internal/modules/booking"
	"hotel/internal/modules/feed"
	"hotel/internal/modules/manager"
	"hotel/internal/modules/services"
	jwtsvc "hotel/internal/pkg/jwt"
	"hotel/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Deps struct {
	DB             *gorm.DB
	JWT            *jwtsvc.Service
	Limiter        auth.Limiter
	Hub            *feed.Hub
	Log            zerolog.Logger
	CORSOrigins    []string
	MetricsEnabled bool
}

func NewRouter(d Deps) *gin.Engine {
	if d.Hub == nil {
		d.Hub = feed.NewHub(d.Log)
	}

	userRepo := repository.NewUserRepository(d.DB)
	serviceRepo := repository.NewServiceRepository(d.DB)
	roomRepo := repository.NewRoomRepository(d.DB)
	categoryRepo := repository.NewCategoryRepository(d.DB)
	bookingRepo := repository.NewBookingRepository(d.DB)
	provisionRepo := repository.NewProvisionRepository(d.DB)

	authHandler := auth.NewHandler(auth.NewService(userRepo, d.JWT, d.Limiter, d.Log))
	servicesHandler := services.NewHandler(services.NewService(serviceRepo, userRepo))

	bookingService := booking.NewService(bookingRepo, userRepo, roomRepo)
	bookingHandler := booking.NewHandler(bookingService)

	assignmentService := assignment.NewService(userRepo, serviceRepo, provisionRepo, bookingService, d.Hub, d.Log)
	assignmentHandler := assignment.NewHandler(assignmentService)

	managerHandler := manager.NewHandler(manager.NewService(userRepo, serviceRepo, roomRepo, categoryRepo, bookingRepo, provisionRepo))
	feedHandler := feed.NewHandler(d.Hub, d.JWT, d.CORSOrigins)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.ErrorLogger(),
		middleware.CORS(d.CORSOrigins),
	)

	if d.MetricsEnabled {
		metrics.Register()
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		public := v1.Group("", middleware.OptionalJWTAuth(d.JWT))
		servicesHandler.RegisterRoutes(public)

		protected := v1.Group("", middleware.JWTAuth(d.JWT))
		authHandler.RegisterProtectedRoutes(protected)

		// the feed authenticates its own websocket handshake
		feedHandler.RegisterRoutes(v1.Group("/manager"))

		staff := v1.Group("/manager",
			middleware.JWTAuth(d.JWT),
			middleware.RequireRoles("manager_area", access.ManagerArea...),
		)
		managerHandler.RegisterRoutes(staff)
		assignmentHandler.RegisterRoutes(staff)
		bookingHandler.RegisterRoutes(staff)
	}

	return r
}
