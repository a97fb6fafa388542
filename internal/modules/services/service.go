package services

import (
	"context"
	"errors"
	"fmt"

	"hotel/internal/access"
	"hotel/internal/domain"
	"hotel/internal/pricing"

	"gorm.io/gorm"
)

type Service struct {
	services ServiceRepository
	users    UserRepository
}

func NewService(services ServiceRepository, users UserRepository) *Service {
	return &Service{services: services, users: users}
}

// List returns active services. Clients see prices with their personal
// discount applied; everyone else sees list prices.
func (s *Service) List(ctx context.Context, caller access.Caller) (*ListResponse, error) {
	items, err := s.services.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	data := UserData{IsGuest: true}
	priceDiscount := 0.0
	if caller.IsAuthenticated() {
		u, err := s.users.GetByID(ctx, caller.UserID)
		switch {
		case err == nil:
			data = UserData{
				Discount:           u.Discount,
				HasDiscount:        u.HasDiscount(),
				DiscountMoreThan10: u.Discount > 10,
				IsGuest:            u.Role == domain.RoleGuest,
			}
			// only clients are charged discounted prices
			if u.Role == domain.RoleClient {
				priceDiscount = u.Discount
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// stale token; treat as anonymous
		default:
			return nil, fmt.Errorf("load user: %w", err)
		}
	}

	out := &ListResponse{Services: make([]ServiceView, 0, len(items)), UserData: data}
	for _, it := range items {
		discounted := pricing.WithDiscount(it.Cost, priceDiscount)
		out.Services = append(out.Services, ServiceView{
			ID:              it.ID,
			Name:            it.Name,
			Description:     it.Description,
			OriginalPrice:   it.Cost,
			DiscountedPrice: discounted,
			HasDiscount:     discounted < it.Cost,
		})
	}
	return out, nil
}
