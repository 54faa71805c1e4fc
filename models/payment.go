package models

type PaymentMethod string

const (
	PaymentUPI    PaymentMethod = "upi"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
	PaymentCOD    PaymentMethod = "cod"
)

// Checkout holds the in-progress checkout between the address and payment steps.
type Checkout struct {
	Address      *Address     `json:"address,omitempty"`
	DeliveryType DeliveryType `json:"delivery_type"`
	CouponCode   string       `json:"coupon_code,omitempty"`
}

type CheckoutSummary struct {
	Subtotal              int `json:"subtotal"`
	Tax                   int `json:"tax"`
	DeliveryCharges       int `json:"delivery_charges"`
	Discount              int `json:"discount"`
	Total                 int `json:"total"`
	EstimatedDeliveryTime int `json:"estimated_delivery_time"` // minutes
}
