package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/statemachine"
	"github.com/yeremiapane/cafe-app/utils"
)

// minutes knocked off the countdown on each forward step
const stepMinutes = 10

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepUpcoming  StepState = "upcoming"
)

// OrderStats counts orders per status for the staff board.
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Served    int `json:"served"`
	Completed int `json:"completed"`
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// PlaceOrder turns the cart into a pending order. A zero address falls back to
// the one saved in the address step.
func (s *CafeStore) PlaceOrder(address models.Address, deliveryType models.DeliveryType, method models.PaymentMethod) (models.Order, error) {
	if deliveryType == "" {
		deliveryType = models.DeliveryTypeDelivery
	}
	if !validDeliveryType(deliveryType) {
		return models.Order{}, ErrInvalidDeliveryType
	}
	if !validPaymentMethod(method) {
		return models.Order{}, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return models.Order{}, ErrCartEmpty
	}
	if address == (models.Address{}) && s.checkout.Address != nil {
		address = *s.checkout.Address
	}
	address = normalizeAddress(address)
	if deliveryType == models.DeliveryTypeDelivery {
		if err := ValidateAddress(address); err != nil {
			s.mu.Unlock()
			return models.Order{}, err
		}
	}

	now := s.now()
	summary := s.summaryLocked(deliveryType, s.checkout.CouponCode)
	order := &models.Order{
		ID:                    newOrderID(),
		Items:                 copyCart(s.cart),
		Address:               address,
		DeliveryType:          deliveryType,
		PaymentMethod:         method,
		CouponCode:            s.checkout.CouponCode,
		Subtotal:              summary.Subtotal,
		Tax:                   summary.Tax,
		DeliveryCharges:       summary.DeliveryCharges,
		Discount:              summary.Discount,
		Total:                 summary.Total,
		Status:                models.OrderStatusPending,
		EstimatedDeliveryTime: summary.EstimatedDeliveryTime,
		RemainingMinutes:      summary.EstimatedDeliveryTime,
		StatusHistory: []models.OrderStatusHistory{{
			ToStatus:  models.OrderStatusPending,
			Actor:     statemachine.ActorCustomer,
			Note:      "order placed",
			CreatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.orders = append(s.orders, order)
	s.currentOrderID = order.ID
	s.cart = nil
	s.checkout = models.Checkout{DeliveryType: models.DeliveryTypeDelivery}
	placed := cloneOrder(order)
	cart := s.cartSnapshotLocked()
	s.mu.Unlock()

	utils.InfoLogger.Infof("Order %s placed: %d items, total %s via %s",
		placed.ID, placed.ItemCount(), utils.FormatRupees(placed.Total), placed.PaymentMethod)
	s.emit(models.EventOrderPlaced, placed)
	s.emit(models.EventCartUpdated, cart)
	return placed, nil
}

func cloneOrder(o *models.Order) models.Order {
	c := *o
	c.Items = copyCart(o.Items)
	c.StatusHistory = append([]models.OrderStatusHistory(nil), o.StatusHistory...)
	return c
}

// Orders lists newest first. "" and "all" return every order.
func (s *CafeStore) Orders(status string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Order{}
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if status == "" || status == "all" || string(o.Status) == status {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func (s *CafeStore) Order(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o := s.findOrderLocked(id)
	if o == nil {
		return models.Order{}, ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *CafeStore) findOrderLocked(id string) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// CurrentOrder is the order most recently placed in this session.
func (s *CafeStore) CurrentOrder() (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentOrderID == "" {
		return models.Order{}, false
	}
	o := s.findOrderLocked(s.currentOrderID)
	if o == nil {
		return models.Order{}, false
	}
	return cloneOrder(o), true
}

// UpdateOrderStatus moves an order to status if actor may perform that transition.
func (s *CafeStore) UpdateOrderStatus(id string, status models.OrderStatus, actor string) (models.Order, error) {
	s.mu.Lock()
	o := s.findOrderLocked(id)
	if o == nil {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}
	if err := statemachine.CanTransition(o.Status, status, actor); err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}

	now := s.now()
	o.StatusHistory = append(o.StatusHistory, models.OrderStatusHistory{
		FromStatus: o.Status,
		ToStatus:   status,
		Actor:      actor,
		CreatedAt:  now,
	})
	o.Status = status
	o.UpdatedAt = now
	if status == models.OrderStatusCompleted {
		o.RemainingMinutes = 0
	} else {
		o.RemainingMinutes -= stepMinutes
		if o.RemainingMinutes < 0 {
			o.RemainingMinutes = 0
		}
	}
	updated := cloneOrder(o)
	s.mu.Unlock()

	utils.InfoLogger.Infof("Order %s moved to %s by %s", updated.ID, updated.Status, actor)
	s.emit(models.EventOrderStatusUpdate, updated)
	return updated, nil
}

// AdvanceOrder moves an order one step forward.
func (s *CafeStore) AdvanceOrder(id string, actor string) (models.Order, error) {
	s.mu.RLock()
	o := s.findOrderLocked(id)
	var current models.OrderStatus
	if o != nil {
		current = o.Status
	}
	s.mu.RUnlock()

	if o == nil {
		return models.Order{}, ErrOrderNotFound
	}
	next, ok := s.NextOrderStatus(current)
	if !ok {
		return models.Order{}, ErrOrderFinished
	}
	return s.UpdateOrderStatus(id, next, actor)
}

func (s *CafeStore) NextOrderStatus(status models.OrderStatus) (models.OrderStatus, bool) {
	return statemachine.Next(status)
}

// activeOrderIDs lists orders that have not reached the terminal status, oldest first.
func (s *CafeStore) activeOrderIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, o := range s.orders {
		if !statemachine.IsTerminal(o.Status) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func (s *CafeStore) OrderStats() OrderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := OrderStats{Total: len(s.orders)}
	for _, o := range s.orders {
		switch o.Status {
		case models.OrderStatusPending:
			stats.Pending++
		case models.OrderStatusPreparing:
			stats.Preparing++
		case models.OrderStatusReady:
			stats.Ready++
		case models.OrderStatusServed:
			stats.Served++
		case models.OrderStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// StepStatus places step relative to the order's status on the tracking timeline.
// A completed order shows every step as completed.
func StepStatus(order models.Order, step models.OrderStatus) StepState {
	if order.Status == models.OrderStatusCompleted {
		return StepCompleted
	}
	current, target := -1, -1
	for i, s := range statemachine.Lifecycle {
		if s == order.Status {
			current = i
		}
		if s == step {
			target = i
		}
	}
	switch {
	case target < current:
		return StepCompleted
	case target == current:
		return StepCurrent
	default:
		return StepUpcoming
	}
}

// TrackingStep is one row of the tracking timeline.
type TrackingStep struct {
	Status models.OrderStatus `json:"status"`
	State  StepState          `json:"state"`
}

type Tracking struct {
	OrderID          string             `json:"order_id"`
	Status           models.OrderStatus `json:"status"`
	RemainingMinutes int                `json:"remaining_minutes"`
	Steps            []TrackingStep     `json:"steps"`
}

func (s *CafeStore) Tracking(id string) (Tracking, error) {
	order, err := s.Order(id)
	if err != nil {
		return Tracking{}, fmt.Errorf("tracking %s: %w", id, err)
	}

	t := Tracking{
		OrderID:          order.ID,
		Status:           order.Status,
		RemainingMinutes: order.RemainingMinutes,
	}
	for _, step := range statemachine.Lifecycle {
		t.Steps = append(t.Steps, TrackingStep{Status: step, State: StepStatus(order, step)})
	}
	return t, nil
}
