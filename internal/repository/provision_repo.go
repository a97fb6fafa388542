package repository

import (
	"context"
	"time"

	"hotel/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProvisionRepository struct {
	db *gorm.DB
}

func NewProvisionRepository(db *gorm.DB) *ProvisionRepository {
	return &ProvisionRepository{db: db}
}

var provisionKey = []clause.Column{{Name: "booking_id"}, {Name: "service_id"}, {Name: "service_date"}}

func (r *ProvisionRepository) Find(ctx context.Context, bookingID, serviceID int64, serviceDate time.Time) (*domain.ServiceProvision, error) {
	var p domain.ServiceProvision
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND service_id = ? AND service_date = ?", bookingID, serviceID, domain.DateOf(serviceDate)).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateOrIncrement inserts p, or adds p.Quantity to the existing row with the
// same (booking, service, service_date). The unique index makes the insert the
// arbiter, so concurrent callers never produce two rows or lose an increment.
// On return p holds the stored row; created reports which branch ran.
func (r *ProvisionRepository) CreateOrIncrement(ctx context.Context, p *domain.ServiceProvision) (created bool, err error) {
	p.ServiceDate = domain.DateOf(p.ServiceDate)
	delta := p.Quantity

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ins := tx.Omit("Booking", "Service").
			Clauses(clause.OnConflict{Columns: provisionKey, DoNothing: true}).
			Create(p)
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 1 {
			created = true
			return nil
		}

		upd := tx.Model(&domain.ServiceProvision{}).
			Where("booking_id = ? AND service_id = ? AND service_date = ?", p.BookingID, p.ServiceID, p.ServiceDate).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected != 1 {
			return ErrConflict
		}

		var stored domain.ServiceProvision
		if err := tx.Where("booking_id = ? AND service_id = ? AND service_date = ?", p.BookingID, p.ServiceID, p.ServiceDate).
			First(&stored).Error; err != nil {
			return err
		}
		*p = stored
		return nil
	})
	if err != nil && isUniqueViolation(err) {
		return false, ErrConflict
	}
	return created, err
}

func (r *ProvisionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.ServiceProvision, error) {
	var out []domain.ServiceProvision
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("booking_id = ?", bookingID).
		Order("service_date ASC, id ASC").
		Find(&out).Error
	return out, err
}
