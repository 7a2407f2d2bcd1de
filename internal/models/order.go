package models

type Order struct {
	OrderID     int64   `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	TotalItems  int     `json:"total_items"`
	OrderDate   string  `json:"order_date"`
}

// DailyTotal is one calendar day's summed order amount.
type DailyTotal struct {
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
}

type CartItem struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}
