package services

import "errors"

// Booking errors
var (
	ErrSlotInPast    = errors.New("time slot is in the past")
	ErrSlotTaken     = errors.New("table is already booked for this time slot")
	ErrTableNotFound = errors.New("table not found")
	ErrUnknownSlot   = errors.New("unknown time slot")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRole   = errors.New("role must be staff or customer")
)

// Ordering errors
var (
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidSpiceLevel    = errors.New("invalid spice level")
	ErrInvalidPortion       = errors.New("portion size not offered for this item")
	ErrInvalidAddOn         = errors.New("add-on not offered for this item")
	ErrInvalidTopping       = errors.New("topping not offered for this item")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidAddress       = errors.New("invalid address")
	ErrInvalidDeliveryType  = errors.New("delivery type must be delivery or pickup")
	ErrInvalidPaymentMethod = errors.New("payment method must be upi, card, wallet or cod")
	ErrInvalidCoupon        = errors.New("invalid coupon code")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderFinished        = errors.New("order is already completed")
)
