package manager

import "hotel/internal/domain"

type Dashboard struct {
	TotalClients   int64  `json:"total_clients"`
	TotalServices  int64  `json:"total_services"`
	TotalRooms     int64  `json:"total_rooms"`
	ActiveBookings int64  `json:"active_bookings"`
	Date           string `json:"date"`
}

type RoomQuery struct {
	BedCount string `form:"bed_count"`
	Category string `form:"category"`
}

type RoomList struct {
	Rooms      []domain.Room     `json:"rooms"`
	Categories []domain.Category `json:"categories"`
	BedCounts  []int             `json:"bed_counts"`
	Selected   RoomQuery         `json:"selected"`
}

// BedCountOptions are the filter choices; the last one means "this many or more".
var BedCountOptions = []int{1, 2, 3, 4}

// FolioLine is one charged service on a guest folio.
type FolioLine struct {
	Date      string  `json:"date"`
	Service   string  `json:"service"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type Folio struct {
	Booking       *domain.Booking `json:"booking"`
	Lines         []FolioLine     `json:"lines"`
	ServicesTotal float64         `json:"services_total"`
	GrandTotal    float64         `json:"grand_total"`
	Balance       float64         `json:"balance"`
}
