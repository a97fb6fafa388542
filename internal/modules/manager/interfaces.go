package manager

import (
	"context"
	"time"

	"hotel/internal/domain"
	"hotel/internal/repository"
)

type UserRepository interface {
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

type ServiceRepository interface {
	List(ctx context.Context, search string) ([]domain.Service, error)
	Count(ctx context.Context) (int64, error)
}

type RoomRepository interface {
	List(ctx context.Context, f repository.RoomFilters) ([]domain.Room, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CountActive(ctx context.Context, onDate time.Time) (int64, error)
}

type ProvisionRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.ServiceProvision, error)
}
