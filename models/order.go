package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID                    string               `json:"id"`
	Items                 []CartItem           `json:"items"`
	Address               Address              `json:"address"`
	DeliveryType          DeliveryType         `json:"delivery_type"`
	PaymentMethod         PaymentMethod        `json:"payment_method"`
	CouponCode            string               `json:"coupon_code,omitempty"`
	Subtotal              int                  `json:"subtotal"`
	Tax                   int                  `json:"tax"`
	DeliveryCharges       int                  `json:"delivery_charges"`
	Discount              int                  `json:"discount"`
	Total                 int                  `json:"total"`
	Status                OrderStatus          `json:"status"`
	EstimatedDeliveryTime int                  `json:"estimated_delivery_time"`
	RemainingMinutes      int                  `json:"remaining_minutes"`
	StatusHistory         []OrderStatusHistory `json:"status_history"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

// ItemCount sums the quantities of every line.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// ShortID is the last four characters of the id, as shown on staff cards.
func (o *Order) ShortID() string {
	if len(o.ID) <= 4 {
		return o.ID
	}
	return o.ID[len(o.ID)-4:]
}

// OrderStatusHistory tracks every status change
type OrderStatusHistory struct {
	FromStatus OrderStatus `json:"from_status,omitempty"`
	ToStatus   OrderStatus `json:"to_status"`
	Actor      string      `json:"actor"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
