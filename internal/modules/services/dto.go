package services

type ServiceView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	OriginalPrice   float64 `json:"original_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	HasDiscount     bool    `json:"has_discount"`
}

type UserData struct {
	Discount           float64 `json:"discount"`
	HasDiscount        bool    `json:"has_discount"`
	DiscountMoreThan10 bool    `json:"discount_more_than_10"`
	IsGuest            bool    `json:"is_guest"`
}

type ListResponse struct {
	Services []ServiceView `json:"services"`
	UserData UserData      `json:"user_data"`
}
