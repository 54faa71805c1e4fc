package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/yeremiapane/cafe-app/models"
)

const (
	TaxPercent           = 5
	DeliveryCharge       = 50
	DeliveryEstimateMins = 40
	PickupEstimateMins   = 20
)

var validate = validator.New()

// addressInput is an Address after trimming and stripping the phone to digits.
type addressInput struct {
	Name    string `validate:"required"`
	Phone   string `validate:"required,min=10"`
	Address string `validate:"required"`
}

func normalizeAddress(a models.Address) models.Address {
	return models.Address{
		Name:    strings.TrimSpace(a.Name),
		Phone:   strings.TrimSpace(a.Phone),
		Address: strings.TrimSpace(a.Address),
		IsSaved: a.IsSaved,
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateAddress checks a delivery address. The returned error wraps
// ErrInvalidAddress and names the first failing field.
func ValidateAddress(a models.Address) error {
	a = normalizeAddress(a)
	err := validate.Struct(addressInput{
		Name:    a.Name,
		Phone:   digitsOnly(a.Phone),
		Address: a.Address,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	switch verrs[0].Field() {
	case "Name":
		return fmt.Errorf("%w: name is required", ErrInvalidAddress)
	case "Phone":
		return fmt.Errorf("%w: valid phone number is required", ErrInvalidAddress)
	default:
		return fmt.Errorf("%w: address is required", ErrInvalidAddress)
	}
}

func validDeliveryType(t models.DeliveryType) bool {
	return t == models.DeliveryTypeDelivery || t == models.DeliveryTypePickup
}

func validPaymentMethod(m models.PaymentMethod) bool {
	switch m {
	case models.PaymentUPI, models.PaymentCard, models.PaymentWallet, models.PaymentCOD:
		return true
	}
	return false
}

// SetCheckoutAddress is the first checkout step. Pickup orders need no address.
func (s *CafeStore) SetCheckoutAddress(address models.Address, deliveryType models.DeliveryType) error {
	if deliveryType == "" {
		deliveryType = models.DeliveryTypeDelivery
	}
	if !validDeliveryType(deliveryType) {
		return ErrInvalidDeliveryType
	}
	if deliveryType == models.DeliveryTypeDelivery {
		if err := ValidateAddress(address); err != nil {
			return err
		}
	}

	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return ErrCartEmpty
	}
	addr := normalizeAddress(address)
	s.checkout.Address = &addr
	s.checkout.DeliveryType = deliveryType
	checkout := s.checkoutLocked()
	s.mu.Unlock()

	s.emit(models.EventCheckoutUpdated, checkout)
	return nil
}

// ApplyCoupon reports whether code is a known coupon. Unknown codes leave the
// current coupon untouched.
func (s *CafeStore) ApplyCoupon(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := coupons[code]; !ok {
		return false
	}

	s.mu.Lock()
	s.checkout.CouponCode = code
	checkout := s.checkoutLocked()
	s.mu.Unlock()

	s.emit(models.EventCheckoutUpdated, checkout)
	return true
}

func (s *CafeStore) RemoveCoupon() {
	s.mu.Lock()
	s.checkout.CouponCode = ""
	checkout := s.checkoutLocked()
	s.mu.Unlock()

	s.emit(models.EventCheckoutUpdated, checkout)
}

func (s *CafeStore) Checkout() models.Checkout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkoutLocked()
}

func (s *CafeStore) checkoutLocked() models.Checkout {
	c := s.checkout
	if c.Address != nil {
		addr := *c.Address
		c.Address = &addr
	}
	return c
}

func (s *CafeStore) CheckoutSummary() models.CheckoutSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summaryLocked(s.checkout.DeliveryType, s.checkout.CouponCode)
}

func (s *CafeStore) summaryLocked(deliveryType models.DeliveryType, couponCode string) models.CheckoutSummary {
	subtotal := s.cartSubtotalLocked()
	sum := models.CheckoutSummary{
		Subtotal:              subtotal,
		Tax:                   int(math.Round(float64(subtotal) * TaxPercent / 100)),
		EstimatedDeliveryTime: DeliveryEstimateMins,
	}

	if deliveryType == models.DeliveryTypePickup {
		sum.EstimatedDeliveryTime = PickupEstimateMins
	} else if len(s.cart) > 0 {
		sum.DeliveryCharges = DeliveryCharge
	}

	if c, ok := coupons[couponCode]; ok {
		sum.Discount = c.discount(subtotal, sum.DeliveryCharges)
		if limit := subtotal + sum.DeliveryCharges; sum.Discount > limit {
			sum.Discount = limit
		}
	}

	sum.Total = sum.Subtotal + sum.Tax + sum.DeliveryCharges - sum.Discount
	if sum.Total < 0 {
		sum.Total = 0
	}
	return sum
}

type coupon struct {
	discount func(subtotal, delivery int) int
}

var coupons = map[string]coupon{
	"WELCOME50": {discount: func(int, int) int { return 50 }},
	"SAVE10": {discount: func(subtotal, _ int) int {
		return int(math.Round(float64(subtotal) * 0.10))
	}},
	"FREEDEL": {discount: func(_, delivery int) int { return delivery }},
}
