package repository

import (
	"context"
	"time"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	b.CheckInDate = domain.DateOf(b.CheckInDate)
	b.CheckOutDate = domain.DateOf(b.CheckOutDate)
	return r.db.WithContext(ctx).Omit("Guest", "Room").Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Preload("Room.Category").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("check_in_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

// FindActive returns the guest's booking whose stay covers onDate. When stays
// overlap the earliest check-in wins, then the lowest id.
func (r *BookingRepository) FindActive(ctx context.Context, guestID int64, onDate time.Time) (*domain.Booking, error) {
	day := domain.DateOf(onDate)
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("guest_id = ? AND check_in_date <= ? AND check_out_date >= ?", guestID, day, day).
		Order("check_in_date ASC, id ASC").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// HasOverlap reports whether the guest already holds a stay intersecting [checkIn, checkOut].
func (r *BookingRepository) HasOverlap(ctx context.Context, guestID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("guest_id = ? AND check_in_date <= ? AND check_out_date >= ?",
			guestID, domain.DateOf(checkOut), domain.DateOf(checkIn)).
		Count(&cnt).Error
	return cnt > 0, err
}

// CountActive counts bookings of any guest whose stay covers onDate.
func (r *BookingRepository) CountActive(ctx context.Context, onDate time.Time) (int64, error) {
	day := domain.DateOf(onDate)
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("check_in_date <= ? AND check_out_date >= ?", day, day).
		Count(&cnt).Error
	return cnt, err
}

// AddPayment atomically raises paid_amount by amount unless that would exceed
// total_cost, compared in cents. It returns false when the guard rejected the update.
func (r *BookingRepository) AddPayment(ctx context.Context, bookingID int64, amount float64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND ROUND((paid_amount + ?) * 100) <= ROUND(total_cost * 100)", bookingID, amount).
		UpdateColumn("paid_amount", gorm.Expr("ROUND(paid_amount + ?, 2)", amount))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
