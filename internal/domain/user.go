package domain

import (
	"time"

	"hotel/internal/pricing"
)

type UserRole string

const (
	RoleGuest   UserRole = "guest"
	RoleClient  UserRole = "client"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleClient, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type Document struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Series    string    `json:"series" gorm:"size:50;not null" validate:"required,max=50"`
	Number    string    `json:"number" gorm:"size:50;not null" validate:"required,max=50"`
	IssueDate time.Time `json:"issue_date" gorm:"type:date;not null" validate:"required"`
	IssuedBy  string    `json:"issued_by" gorm:"size:255;not null" validate:"required,max=255"`
}

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"size:255;uniqueIndex;not null" validate:"required,email"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"size:10;not null;default:guest;index"`
	FullName     string     `json:"full_name" gorm:"size:255"`
	Phone        string     `json:"phone_number,omitempty" gorm:"size:20"`
	BirthDate    *time.Time `json:"birth_date,omitempty" gorm:"type:date"`
	Discount     float64    `json:"discount" gorm:"type:decimal(5,2);not null;default:0" validate:"gte=0,lte=100"`
	DocumentID   *int64     `json:"document_id,omitempty"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`
	IsStaff      bool       `json:"is_staff" gorm:"not null;default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Document *Document `json:"document,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// PriceWithDiscount applies the user's personal discount to a price.
func (u *User) PriceWithDiscount(price float64) float64 {
	return pricing.WithDiscount(price, u.Discount)
}

func (u *User) HasDiscount() bool {
	return u.Discount > 0
}
