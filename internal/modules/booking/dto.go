package booking

type CreateBookingRequest struct {
	GuestID      int64    `json:"guest_id" binding:"required"`
	RoomID       int64    `json:"room_id" binding:"required"`
	CheckInDate  string   `json:"check_in_date" binding:"required"`
	CheckOutDate string   `json:"check_out_date" binding:"required"`
	TotalCost    *float64 `json:"total_cost"`
	PaidAmount   float64  `json:"paid_amount"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type ActiveBookingQuery struct {
	GuestID int64  `form:"guest_id" binding:"required"`
	Date    string `form:"date"`
}
