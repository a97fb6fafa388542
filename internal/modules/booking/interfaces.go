package booking

import (
	"context"
	"time"

	"hotel/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error)
	FindActive(ctx context.Context, guestID int64, onDate time.Time) (*domain.Booking, error)
	HasOverlap(ctx context.Context, guestID int64, checkIn, checkOut time.Time) (bool, error)
	AddPayment(ctx context.Context, bookingID int64, amount float64) (bool, error)
}

type UserRepository interface {
	GetByIDAndRole(ctx context.Context, id int64, role domain.UserRole) (*domain.User, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
