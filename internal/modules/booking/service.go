package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel/internal/domain"
	"hotel/internal/pricing"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	users    UserRepository
	rooms    RoomRepository
	today    func() time.Time
}

func NewService(bookings BookingRepository, users UserRepository, rooms RoomRepository) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		rooms:    rooms,
		today:    domain.Today,
	}
}

// FindActiveBooking returns the guest's booking whose stay covers onDate.
// When several stays qualify the earliest check-in wins, then the lowest id.
func (s *Service) FindActiveBooking(ctx context.Context, guestID int64, onDate time.Time) (*domain.Booking, error) {
	if guestID <= 0 || onDate.IsZero() {
		return nil, ErrValidation
	}
	b, err := s.bookings.FindActive(ctx, guestID, domain.DateOf(onDate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveBooking
		}
		return nil, fmt.Errorf("find active booking: %w", err)
	}
	return b, nil
}

// ActiveBooking resolves the active booking for a query; an empty date means today.
func (s *Service) ActiveBooking(ctx context.Context, q ActiveBookingQuery) (*domain.Booking, error) {
	onDate := s.today()
	if q.Date != "" {
		d, err := domain.ParseDate(q.Date)
		if err != nil {
			return nil, ErrValidation
		}
		onDate = d
	}
	return s.FindActiveBooking(ctx, q.GuestID, onDate)
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := domain.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := domain.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}
	if checkOut.Before(checkIn) || req.PaidAmount < 0 {
		return nil, ErrValidation
	}
	if req.TotalCost != nil && *req.TotalCost < 0 {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByIDAndRole(ctx, req.GuestID, domain.RoleClient); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("load guest: %w", err)
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room: %w", err)
	}

	overlap, err := s.bookings.HasOverlap(ctx, req.GuestID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		return nil, ErrOverlap
	}

	b := &domain.Booking{
		GuestID:      req.GuestID,
		RoomID:       room.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		PaidAmount:   pricing.Round(req.PaidAmount),
	}
	if req.TotalCost != nil {
		b.TotalCost = pricing.Round(*req.TotalCost)
	} else {
		var nightly float64
		if room.Category != nil {
			nightly = room.Category.Price
		}
		b.TotalCost = pricing.Round(nightly * float64(b.Nights()))
	}
	if b.PaidAmount > b.TotalCost {
		return nil, ErrOverpayment
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	b.Room = room
	return b, nil
}

// AddPayment records a payment against a booking. The running total may
// never exceed the booking's total cost.
func (s *Service) AddPayment(ctx context.Context, bookingID int64, amount float64) (*domain.Booking, error) {
	amount = pricing.Round(amount)
	if amount <= 0 {
		return nil, ErrValidation
	}
	if _, err := s.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	ok, err := s.bookings.AddPayment(ctx, bookingID, amount)
	if err != nil {
		return nil, fmt.Errorf("add payment: %w", err)
	}
	if !ok {
		return nil, ErrOverpayment
	}
	return s.GetByID(ctx, bookingID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *Service) ListByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	if guestID <= 0 {
		return nil, ErrValidation
	}
	out, err := s.bookings.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}
