package models

import (
	"time"
)

// Notification is emitted by the store after every state change.
type Notification struct {
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
	CreatedAt time.Time   `json:"created_at"`
}

// Store events
const (
	EventBookingCreated    = "booking_created"
	EventBookingCancelled  = "booking_cancelled"
	EventSelectionUpdated  = "selection_updated"
	EventCartUpdated       = "cart_updated"
	EventCheckoutUpdated   = "checkout_updated"
	EventOrderPlaced       = "order_placed"
	EventOrderStatusUpdate = "order_status_update"
)
