package domain

import "time"

type Booking struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	GuestID      int64     `json:"guest_id" gorm:"not null;index:idx_booking_guest_stay,priority:1"`
	RoomID       int64     `json:"room_id" gorm:"not null;index"`
	CheckInDate  time.Time `json:"check_in_date" gorm:"type:date;not null;index:idx_booking_guest_stay,priority:2"`
	CheckOutDate time.Time `json:"check_out_date" gorm:"type:date;not null"`
	TotalCost    float64   `json:"total_cost" gorm:"type:decimal(10,2);not null"`
	PaidAmount   float64   `json:"paid_amount" gorm:"type:decimal(10,2);not null;default:0"`

	Guest *User `json:"guest,omitempty" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	Room  *Room `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// Covers reports whether the stay includes the given day, both ends inclusive.
func (b *Booking) Covers(day time.Time) bool {
	d := DateOf(day)
	return !DateOf(b.CheckInDate).After(d) && !DateOf(b.CheckOutDate).Before(d)
}

func (b *Booking) Nights() int {
	n := int(DateOf(b.CheckOutDate).Sub(DateOf(b.CheckInDate)).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

func (b *Booking) Balance() float64 {
	return b.TotalCost - b.PaidAmount
}

// ServiceProvision records a service provided under a booking on a given day.
// (booking, service, service_date) is unique; repeated assignments add to Quantity.
type ServiceProvision struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	BookingID   int64     `json:"booking_id" gorm:"not null;uniqueIndex:idx_provision_key,priority:1"`
	ServiceID   int64     `json:"service_id" gorm:"not null;uniqueIndex:idx_provision_key,priority:2"`
	ServiceDate time.Time `json:"service_date" gorm:"type:date;not null;uniqueIndex:idx_provision_key,priority:3"`
	Quantity    int       `json:"quantity" gorm:"not null;default:1"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}
