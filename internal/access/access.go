// Package access implements the per-operation role gate.
//
// Roles are a flat set. Every operation names its own allow-list; there is no
// implied ordering between roles, so admin access to an operation exists only
// because the operation lists admin.
package access

import (
	"errors"
	"slices"

	"hotel/internal/domain"
)

// ErrAccessDenied is returned for every rejected caller. It intentionally
// carries no detail about the target resource.
var ErrAccessDenied = errors.New("access denied")

// DeniedMessage is the user-facing text for ErrAccessDenied.
const DeniedMessage = "Access denied."

// Allow-lists shared by several operations.
var (
	ManagerArea = []domain.UserRole{domain.RoleAdmin, domain.RoleManager}
	ClientArea  = []domain.UserRole{domain.RoleAdmin, domain.RoleManager, domain.RoleClient}
	AdminOnly   = []domain.UserRole{domain.RoleAdmin}
)

// Caller is the identity a request acts as.
type Caller struct {
	UserID int64
	Role   domain.UserRole
}

func Anonymous() Caller {
	return Caller{}
}

func (c Caller) IsAuthenticated() bool {
	return c.UserID > 0 && c.Role != ""
}

// Authorize admits role when it is a member of allowed.
func Authorize(role domain.UserRole, allowed ...domain.UserRole) error {
	if role == "" || !role.Valid() {
		return ErrAccessDenied
	}
	if slices.Contains(allowed, role) {
		return nil
	}
	return ErrAccessDenied
}

// Check is Authorize for a full caller; anonymous callers are always denied.
func (c Caller) Check(allowed ...domain.UserRole) error {
	if !c.IsAuthenticated() {
		return ErrAccessDenied
	}
	return Authorize(c.Role, allowed...)
}
