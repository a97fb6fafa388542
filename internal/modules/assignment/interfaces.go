package assignment

import (
	"context"
	"time"

	"hotel/internal/domain"
)

type UserRepository interface {
	GetByIDAndRole(ctx context.Context, id int64, role domain.UserRole) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, search string) ([]domain.Service, error)
}

type ProvisionRepository interface {
	CreateOrIncrement(ctx context.Context, p *domain.ServiceProvision) (created bool, err error)
}

// BookingResolver finds the booking a service is charged to.
type BookingResolver interface {
	FindActiveBooking(ctx context.Context, guestID int64, onDate time.Time) (*domain.Booking, error)
}

// Publisher receives successful assignments; implemented by the live feed.
type Publisher interface {
	Broadcast(eventType string, payload any)
}
