package auth

import (
	"errors"
	"net/http"

	"hotel/internal/access"
	"hotel/internal/middleware"
	"hotel/internal/pkg/response"
	"hotel/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}
}

// RegisterProtectedRoutes expects protected to run JWTAuth.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.GET("/client", middleware.RequireRoles("client_page", access.ClientArea...), h.ClientPage)
		userGroup.GET("/manager", middleware.RequireRoles("manager_page", access.ManagerArea...), h.ManagerPage)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required", errs)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, "PASSWORD_MISMATCH", "Passwords do not match.")
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "A user with this email already exists.")
		default:
			middleware.LoggerFrom(c).Error().Err(err).Msg("registration failed")
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		}
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Registration successful.", res)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password.")
		case errors.Is(err, ErrTooManyAttempts):
			response.Error(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many login attempts, try again later.")
		default:
			middleware.LoggerFrom(c).Error().Err(err).Msg("login failed")
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Logout is stateless: tokens expire on their own and the client drops its copy.
func (h *Handler) Logout(c *gin.Context) {
	response.SuccessWithMessage(c, http.StatusOK, "You have been logged out successfully.", nil)
}

func (h *Handler) GetMe(c *gin.Context) {
	h.profile(c)
}

func (h *Handler) ClientPage(c *gin.Context) {
	h.profile(c)
}

func (h *Handler) ManagerPage(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("list clients failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": clients})
}

func (h *Handler) profile(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	user, err := h.service.GetCurrentUser(c.Request.Context(), caller.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		middleware.LoggerFrom(c).Error().Err(err).Msg("load profile failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}
