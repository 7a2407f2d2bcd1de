package models

import (
	"time"

	"github.com/google/uuid"
)

type Event[T any] struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Time    time.Time `json:"time"`
	OrderID int64     `json:"order_id"`
	Payload T         `json:"payload"`
}

type OrderPlacedPayload struct {
	TotalAmount float64 `json:"total_amount"`
	TotalItems  int     `json:"total_items"`
	OrderDate   string  `json:"order_date"`
}

func NewOrderPlacedEvent(orderID int64, totalAmount float64, totalItems int, orderDate string) Event[OrderPlacedPayload] {
	return Event[OrderPlacedPayload]{
		ID:      uuid.NewString(),
		Type:    "orders.placed",
		Version: 1,
		Time:    time.Now(),
		OrderID: orderID,
		Payload: OrderPlacedPayload{
			TotalAmount: totalAmount,
			TotalItems:  totalItems,
			OrderDate:   orderDate,
		},
	}
}
