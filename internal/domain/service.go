package domain

// Service is a paid hotel service (spa, laundry, transfer...) that can be
// provided to a guest during a stay.
type Service struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Cost        float64 `json:"cost" gorm:"type:decimal(10,2);not null" validate:"gte=0"`
	Description string  `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool    `json:"is_active" gorm:"not null;index"`
}
