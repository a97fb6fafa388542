package auth

import "hotel/internal/domain"

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	FullName        string `json:"full_name" validate:"omitempty,max=255"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Redirect hints tell the client which area to open after login.
const (
	RedirectAdmin    = "admin"
	RedirectManager  = "manager"
	RedirectServices = "services_list"
)

type LoginResult struct {
	User     *domain.User `json:"user"`
	Token    string       `json:"token"`
	Redirect string       `json:"redirect"`
}

func redirectFor(role domain.UserRole) string {
	switch role {
	case domain.RoleAdmin:
		return RedirectAdmin
	case domain.RoleManager:
		return RedirectManager
	default:
		return RedirectServices
	}
}
