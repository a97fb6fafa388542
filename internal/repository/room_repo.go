package repository

import (
	"context"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// RoomFilters narrows the room listing. Zero values mean "any".
type RoomFilters struct {
	BedCount    int
	MinBedCount int
	CategoryID  int64
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Omit("Category").Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).Preload("Category").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilters) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Category.Equipment").
		Preload("Category.Equipment.Item")

	if f.BedCount > 0 {
		q = q.Where("bed_count = ?", f.BedCount)
	}
	if f.MinBedCount > 0 {
		q = q.Where("bed_count >= ?", f.MinBedCount)
	}
	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}

	var rooms []domain.Room
	err := q.Order("floor ASC, id ASC").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).Count(&cnt).Error
	return cnt, err
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Equipment.Item").
		Order("name ASC, id ASC").
		Find(&out).Error
	return out, err
}

// AddEquipment links an item to a category, creating the item by name if needed.
func (r *CategoryRepository) AddEquipment(ctx context.Context, categoryID int64, itemName string) (*domain.Equipment, error) {
	var eq domain.Equipment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item domain.Item
		if err := tx.Where(domain.Item{Name: itemName}).FirstOrCreate(&item).Error; err != nil {
			return err
		}
		eq = domain.Equipment{CategoryID: categoryID, ItemID: item.ID}
		if err := tx.Create(&eq).Error; err != nil {
			return err
		}
		eq.Item = &item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &eq, nil
}
