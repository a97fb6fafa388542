package assignment

import (
	"context"
	"errors"
	"fmt"

	"hotel/internal/access"
	"hotel/internal/domain"
	"hotel/internal/metrics"
	"hotel/internal/modules/feed"
	"hotel/internal/pricing"
	"hotel/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Service struct {
	users      UserRepository
	services   ServiceRepository
	provisions ProvisionRepository
	bookings   BookingResolver
	publisher  Publisher
	log        zerolog.Logger
}

// NewService wires the workflow. publisher may be nil.
func NewService(
	users UserRepository,
	services ServiceRepository,
	provisions ProvisionRepository,
	bookings BookingResolver,
	publisher Publisher,
	log zerolog.Logger,
) *Service {
	return &Service{
		users:      users,
		services:   services,
		provisions: provisions,
		bookings:   bookings,
		publisher:  publisher,
		log:        log,
	}
}

// AssignService charges a service to the guest's booking active on the
// service date. Repeating an assignment for the same booking, service and
// day adds to the stored quantity instead of creating a second row.
func (s *Service) AssignService(ctx context.Context, caller access.Caller, req AssignRequest) (*Result, error) {
	if err := caller.Check(access.ManagerArea...); err != nil {
		metrics.IncAccessDenied("assign_service")
		return nil, ErrAccessDenied
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if req.GuestID <= 0 || req.ServiceID <= 0 || req.ServiceDate == "" || quantity < 1 {
		return nil, ErrValidation
	}
	serviceDate, err := domain.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, ErrValidation
	}

	guest, err := s.users.GetByIDAndRole(ctx, req.GuestID, domain.RoleClient)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, s.failed(fmt.Errorf("load guest: %w", err))
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, s.failed(fmt.Errorf("load service: %w", err))
	}

	b, err := s.bookings.FindActiveBooking(ctx, guest.ID, serviceDate)
	if err != nil {
		if errors.Is(err, ErrNoActiveBooking) {
			return nil, ErrNoActiveBooking
		}
		return nil, s.failed(err)
	}

	p := &domain.ServiceProvision{
		BookingID:   b.ID,
		ServiceID:   svc.ID,
		ServiceDate: serviceDate,
		Quantity:    quantity,
	}
	created, err := s.provisions.CreateOrIncrement(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, s.failed(ErrConflict)
		}
		return nil, s.failed(fmt.Errorf("store provision: %w", err))
	}
	p.Service = svc

	disposition := Merged
	if created {
		disposition = Created
	}
	metrics.IncAssignment(string(disposition))

	unit := guest.PriceWithDiscount(svc.Cost)
	res := &Result{
		Provision:   p,
		Disposition: disposition,
		Quantity:    p.Quantity,
		UnitPrice:   unit,
		LineTotal:   pricing.LineTotal(svc.Cost, guest.Discount, p.Quantity),
	}

	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("guest_id", guest.ID).
		Int64("service_id", svc.ID).
		Str("service_date", serviceDate.Format(domain.DateLayout)).
		Int("quantity", p.Quantity).
		Str("disposition", string(disposition)).
		Int64("assigned_by", caller.UserID).
		Msg("service assigned")

	if s.publisher != nil {
		s.publisher.Broadcast(feed.EventServiceAssigned, assignedEvent{
			BookingID:   b.ID,
			GuestID:     guest.ID,
			GuestName:   guest.FullName,
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			ServiceDate: serviceDate.Format(domain.DateLayout),
			Quantity:    p.Quantity,
			Disposition: disposition,
			AssignedBy:  caller.UserID,
		})
	}
	return res, nil
}

// FormData lists the clients and every service staff can pick from.
func (s *Service) FormData(ctx context.Context) (*FormData, error) {
	clients, err := s.users.ListByRole(ctx, domain.RoleClient)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	services, err := s.services.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return &FormData{Clients: clients, Services: services}, nil
}

func (s *Service) failed(err error) error {
	metrics.IncAssignment("failed")
	return err
}
