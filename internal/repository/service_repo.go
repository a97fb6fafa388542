package repository

import (
	"context"
	"strings"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

// ServiceRepository stores the hotel's paid services.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

// List returns all services whose name contains search, case-insensitively.
func (r *ServiceRepository) List(ctx context.Context, search string) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Model(&domain.Service{})
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(s))+"%")
	}
	var out []domain.Service
	err := q.Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Service{}).Count(&cnt).Error
	return cnt, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
