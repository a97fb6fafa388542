package assignment

import "hotel/internal/domain"

type AssignRequest struct {
	GuestID     int64  `json:"guest_id"`
	ServiceID   int64  `json:"service_id"`
	ServiceDate string `json:"service_date"`
	Quantity    *int   `json:"quantity"`
}

type Disposition string

const (
	Created Disposition = "created"
	Merged  Disposition = "merged"
)

// Message is the confirmation shown to staff.
func (d Disposition) Message() string {
	if d == Merged {
		return "Service quantity updated"
	}
	return "Service assigned"
}

type Result struct {
	Provision   *domain.ServiceProvision `json:"provision"`
	Disposition Disposition              `json:"disposition"`
	Quantity    int                      `json:"quantity"`
	UnitPrice   float64                  `json:"unit_price"`
	LineTotal   float64                  `json:"line_total"`
}

type FormData struct {
	Clients  []domain.User    `json:"clients"`
	Services []domain.Service `json:"services"`
}

type assignedEvent struct {
	BookingID   int64       `json:"booking_id"`
	GuestID     int64       `json:"guest_id"`
	GuestName   string      `json:"guest_name"`
	ServiceID   int64       `json:"service_id"`
	ServiceName string      `json:"service_name"`
	ServiceDate string      `json:"service_date"`
	Quantity    int         `json:"quantity"`
	Disposition Disposition `json:"disposition"`
	AssignedBy  int64       `json:"assigned_by"`
}
