package manager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel/internal/domain"
	"hotel/internal/pricing"
	"hotel/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	users      UserRepository
	services   ServiceRepository
	rooms      RoomRepository
	categories CategoryRepository
	bookings   BookingRepository
	provisions ProvisionRepository
	today      func() time.Time
}

func NewService(
	users UserRepository,
	services ServiceRepository,
	rooms RoomRepository,
	categories CategoryRepository,
	bookings BookingRepository,
	provisions ProvisionRepository,
) *Service {
	return &Service{
		users:      users,
		services:   services,
		rooms:      rooms,
		categories: categories,
		bookings:   bookings,
		provisions: provisions,
		today:      domain.Today,
	}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := s.today()
	d := &Dashboard{Date: today.Format(domain.DateLayout)}

	var err error
	if d.TotalClients, err = s.users.CountByRole(ctx, domain.RoleClient); err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}
	if d.TotalServices, err = s.services.Count(ctx); err != nil {
		return nil, fmt.Errorf("count services: %w", err)
	}
	if d.TotalRooms, err = s.rooms.Count(ctx); err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	if d.ActiveBookings, err = s.bookings.CountActive(ctx, today); err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}
	return d, nil
}

func (s *Service) Clients(ctx context.Context) ([]domain.User, error) {
	out, err := s.users.ListByRole(ctx, domain.RoleClient)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return out, nil
}

func (s *Service) Services(ctx context.Context, search string) ([]domain.Service, error) {
	out, err := s.services.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (s *Service) Rooms(ctx context.Context, q RoomQuery) (*RoomList, error) {
	filters, err := roomFilters(q)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return &RoomList{Rooms: rooms, Categories: cats, BedCounts: BedCountOptions, Selected: q}, nil
}

// roomFilters maps query values to repository filters. The largest bed
// count option matches that many beds or more; any other value is exact.
func roomFilters(q RoomQuery) (repository.RoomFilters, error) {
	var f repository.RoomFilters

	if v := strings.TrimSpace(q.BedCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, ErrValidation
		}
		if n == BedCountOptions[len(BedCountOptions)-1] {
			f.MinBedCount = n
		} else {
			f.BedCount = n
		}
	}

	if v := strings.TrimSpace(q.Category); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			return f, ErrValidation
		}
		f.CategoryID = id
	}
	return f, nil
}

// Folio gathers a booking with its charged services priced at the guest's
// discount.
func (s *Service) Folio(ctx context.Context, bookingID int64) (*Folio, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	provs, err := s.provisions.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list provisions: %w", err)
	}

	var discount float64
	if b.Guest != nil {
		discount = b.Guest.Discount
	}

	f := &Folio{Booking: b, Lines: make([]FolioLine, 0, len(provs))}
	for _, p := range provs {
		line := FolioLine{
			Date:     p.ServiceDate.Format(domain.DateLayout),
			Quantity: p.Quantity,
		}
		if p.Service != nil {
			line.Service = p.Service.Name
			line.UnitPrice = pricing.WithDiscount(p.Service.Cost, discount)
			line.Total = pricing.LineTotal(p.Service.Cost, discount, p.Quantity)
		}
		f.ServicesTotal += line.Total
		f.Lines = append(f.Lines, line)
	}
	f.ServicesTotal = pricing.Round(f.ServicesTotal)
	f.GrandTotal = pricing.Round(b.TotalCost + f.ServicesTotal)
	f.Balance = pricing.Round(f.GrandTotal - b.PaidAmount)
	return f, nil
}
