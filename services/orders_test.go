package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/statemachine"
)

func placeTestOrder(t *testing.T, store *CafeStore) models.Order {
	t.Helper()
	fillCart(t, store)
	order, err := store.PlaceOrder(validAddress, models.DeliveryTypeDelivery, models.PaymentUPI)
	require.NoError(t, err)
	return order
}

func TestPlaceOrder(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	fillCart(t, store)
	require.True(t, store.ApplyCoupon("SAVE10"))
	events := recordEvents(store)

	order, err := store.PlaceOrder(validAddress, models.DeliveryTypeDelivery, models.PaymentCard)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Len(t, order.ID, 12)
	assert.Equal(t, strings.ToUpper(order.ID), order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 3, order.ItemCount())
	assert.Equal(t, 280, order.Subtotal)
	assert.Equal(t, 14, order.Tax)
	assert.Equal(t, 50, order.DeliveryCharges)
	assert.Equal(t, 28, order.Discount)
	assert.Equal(t, 316, order.Total)
	assert.Equal(t, "SAVE10", order.CouponCode)
	assert.Equal(t, 40, order.RemainingMinutes)
	assert.Equal(t, testNow, order.CreatedAt)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.OrderStatusPending, order.StatusHistory[0].ToStatus)

	assert.Empty(t, store.CartItems())
	assert.Empty(t, store.Checkout().CouponCode)
	assert.Nil(t, store.Checkout().Address)

	current, ok := store.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, order.ID, current.ID)

	require.Len(t, *events, 2)
	assert.Equal(t, models.EventOrderPlaced, (*events)[0].Event)
	assert.Equal(t, models.EventCartUpdated, (*events)[1].Event)
}

func TestPlaceOrder_UsesSavedAddress(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	fillCart(t, store)
	require.NoError(t, store.SetCheckoutAddress(validAddress, models.DeliveryTypeDelivery))

	order, err := store.PlaceOrder(models.Address{}, models.DeliveryTypeDelivery, models.PaymentCOD)
	require.NoError(t, err)
	assert.Equal(t, validAddress.Name, order.Address.Name)
}

func TestPlaceOrder_Pickup(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	fillCart(t, store)

	order, err := store.PlaceOrder(models.Address{}, models.DeliveryTypePickup, models.PaymentWallet)
	require.NoError(t, err)
	assert.Equal(t, 0, order.DeliveryCharges)
	assert.Equal(t, 294, order.Total)
	assert.Equal(t, 20, order.EstimatedDeliveryTime)
}

func TestPlaceOrder_Errors(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)

	_, err := store.PlaceOrder(validAddress, models.DeliveryTypeDelivery, models.PaymentUPI)
	assert.ErrorIs(t, err, ErrCartEmpty)

	fillCart(t, store)
	_, err = store.PlaceOrder(validAddress, models.DeliveryTypeDelivery, "cheque")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	_, err = store.PlaceOrder(models.Address{Name: "A"}, models.DeliveryTypeDelivery, models.PaymentUPI)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = store.PlaceOrder(validAddress, "teleport", models.PaymentUPI)
	assert.ErrorIs(t, err, ErrInvalidDeliveryType)

	// failed attempts keep the cart
	assert.Equal(t, 3, store.CartCount())
	_, ok := store.CurrentOrder()
	assert.False(t, ok)
}

func TestOrdersNewestFirst(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	first := placeTestOrder(t, store)
	second := placeTestOrder(t, store)

	orders := store.Orders("")
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	_, err := store.AdvanceOrder(first.ID, statemachine.ActorStaff)
	require.NoError(t, err)

	pending := store.Orders("pending")
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Len(t, store.Orders("all"), 2)
	assert.Empty(t, store.Orders("served"))

	_, err = store.Order("ORD-NOPE")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAdvanceOrder_Lifecycle(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	order := placeTestOrder(t, store)

	wantRemaining := []int{30, 20, 10, 0}
	for i, want := range statemachine.Lifecycle[1:] {
		updated, err := store.AdvanceOrder(order.ID, statemachine.ActorStaff)
		require.NoError(t, err)
		assert.Equal(t, want, updated.Status)
		assert.Equal(t, wantRemaining[i], updated.RemainingMinutes)
	}

	_, err := store.AdvanceOrder(order.ID, statemachine.ActorStaff)
	assert.ErrorIs(t, err, ErrOrderFinished)

	final, err := store.Order(order.ID)
	require.NoError(t, err)
	require.Len(t, final.StatusHistory, 5)
	assert.Equal(t, models.OrderStatusServed, final.StatusHistory[4].FromStatus)
	assert.Equal(t, models.OrderStatusCompleted, final.StatusHistory[4].ToStatus)
	assert.Equal(t, statemachine.ActorStaff, final.StatusHistory[4].Actor)
}

func TestUpdateOrderStatus_Invalid(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	order := placeTestOrder(t, store)

	_, err := store.UpdateOrderStatus(order.ID, models.OrderStatusServed, statemachine.ActorStaff)
	assert.True(t, errors.Is(err, statemachine.ErrInvalidTransition))

	_, err = store.UpdateOrderStatus(order.ID, models.OrderStatusPreparing, statemachine.ActorCustomer)
	assert.True(t, errors.Is(err, statemachine.ErrInvalidTransition))

	_, err = store.UpdateOrderStatus("ORD-MISSING", models.OrderStatusPreparing, statemachine.ActorStaff)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	unchanged, err := store.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, unchanged.Status)
}

func TestNextOrderStatus(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	next, ok := store.NextOrderStatus(models.OrderStatusReady)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusServed, next)

	_, ok = store.NextOrderStatus(models.OrderStatusCompleted)
	assert.False(t, ok)
}

func TestOrderStats(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	a := placeTestOrder(t, store)
	placeTestOrder(t, store)
	_, err := store.AdvanceOrder(a.ID, statemachine.ActorStaff)
	require.NoError(t, err)

	assert.Equal(t, OrderStats{Total: 2, Pending: 1, Preparing: 1}, store.OrderStats())
}

func TestStepStatus(t *testing.T) {
	order := models.Order{Status: models.OrderStatusReady}
	assert.Equal(t, StepCompleted, StepStatus(order, models.OrderStatusPending))
	assert.Equal(t, StepCompleted, StepStatus(order, models.OrderStatusPreparing))
	assert.Equal(t, StepCurrent, StepStatus(order, models.OrderStatusReady))
	assert.Equal(t, StepUpcoming, StepStatus(order, models.OrderStatusServed))

	done := models.Order{Status: models.OrderStatusCompleted}
	assert.Equal(t, StepCompleted, StepStatus(done, models.OrderStatusCompleted))
}

func TestTracking(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	order := placeTestOrder(t, store)
	_, err := store.AdvanceOrder(order.ID, statemachine.ActorStaff)
	require.NoError(t, err)

	tr, err := store.Tracking(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, tr.Status)
	assert.Equal(t, 30, tr.RemainingMinutes)
	require.Len(t, tr.Steps, 5)
	assert.Equal(t, StepCompleted, tr.Steps[0].State)
	assert.Equal(t, StepCurrent, tr.Steps[1].State)
	assert.Equal(t, StepUpcoming, tr.Steps[4].State)

	_, err = store.Tracking("ORD-NONE")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
