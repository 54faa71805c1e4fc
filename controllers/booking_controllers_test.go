package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/cafe-app/controllers"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/services"
)

func setupBookingRouter(store *services.CafeStore) *gin.Engine {
	router := newTestRouter()
	bookingCtrl := controllers.NewBookingController(store)
	router.POST("/bookings", bookingCtrl.CreateBooking)
	router.DELETE("/bookings", bookingCtrl.CancelBooking)
	router.GET("/bookings", bookingCtrl.GetBookings)
	router.GET("/bookings/upcoming", bookingCtrl.GetUpcoming)
	router.GET("/slots", bookingCtrl.GetSlots)
	router.GET("/slots/current", bookingCtrl.GetCurrentSlot)
	router.GET("/dates", bookingCtrl.GetDates)
	return router
}

func TestCreateAndCancelBooking(t *testing.T) {
	store := newTestStore(false)
	router := setupBookingRouter(store)

	payload := map[string]interface{}{"table_id": 3, "date": testTomorrow, "slot_start": "19:00"}
	w := performRequest(t, router, http.MethodPost, "/bookings", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	resp := decode(t, w, &booking)
	assert.Equal(t, "Booking created", resp.Message)
	assert.Equal(t, "19:30", booking.SlotEnd)

	w = performRequest(t, router, http.MethodPost, "/bookings", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	resp = decode(t, w, nil)
	assert.False(t, resp.Status)
	assert.Equal(t, services.ErrSlotTaken.Error(), resp.Message)

	w = performRequest(t, router, http.MethodDelete, "/bookings?table_id=3&date="+testTomorrow+"&slot_start=19:00", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, store.IsTableBookedForSlot(3, testTomorrow, "19:00"))

	w = performRequest(t, router, http.MethodDelete, "/bookings?table_id=3&date="+testTomorrow+"&slot_start=19:00", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBooking_Errors(t *testing.T) {
	router := setupBookingRouter(newTestStore(false))

	tests := []struct {
		name    string
		payload map[string]interface{}
		code    int
	}{
		{"missing fields", map[string]interface{}{"table_id": 1}, http.StatusBadRequest},
		{"past slot", map[string]interface{}{"table_id": 1, "date": testToday, "slot_start": "09:00"}, http.StatusUnprocessableEntity},
		{"unknown table", map[string]interface{}{"table_id": 12, "date": testTomorrow, "slot_start": "09:00"}, http.StatusNotFound},
		{"unknown slot", map[string]interface{}{"table_id": 1, "date": testTomorrow, "slot_start": "23:00"}, http.StatusBadRequest},
		{"bad date", map[string]interface{}{"table_id": 1, "date": "16-01-2025", "slot_start": "09:00"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(t, router, http.MethodPost, "/bookings", tt.payload)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestGetBookings(t *testing.T) {
	router := setupBookingRouter(newTestStore(true))

	var bookings []models.Booking
	w := performRequest(t, router, http.MethodGet, "/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &bookings)
	assert.Len(t, bookings, 47)

	w = performRequest(t, router, http.MethodGet, "/bookings?date="+testTomorrow, nil)
	decode(t, w, &bookings)
	assert.Len(t, bookings, 10)

	w = performRequest(t, router, http.MethodGet, "/bookings?date="+testToday+"&slot=19:00", nil)
	decode(t, w, &bookings)
	assert.Len(t, bookings, 4)
}

func TestGetUpcoming(t *testing.T) {
	router := setupBookingRouter(newTestStore(true))

	w := performRequest(t, router, http.MethodGet, "/bookings/upcoming?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var upcoming []models.Booking
	decode(t, w, &upcoming)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "15:00", upcoming[0].SlotStart)

	w = performRequest(t, router, http.MethodGet, "/bookings/upcoming?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSlots(t *testing.T) {
	router := setupBookingRouter(newTestStore(false))

	w := performRequest(t, router, http.MethodGet, "/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var slots []struct {
		Start  string `json:"start"`
		Label  string `json:"label"`
		IsPast bool   `json:"is_past"`
	}
	decode(t, w, &slots)
	require.Len(t, slots, 28)
	assert.True(t, slots[12].IsPast) // 14:00
	assert.False(t, slots[13].IsPast)
	assert.Equal(t, "8:00 AM - 8:30 AM", slots[0].Label)

	w = performRequest(t, router, http.MethodGet, "/slots?date="+testTomorrow, nil)
	decode(t, w, &slots)
	assert.False(t, slots[0].IsPast)
}

func TestGetCurrentSlotAndDates(t *testing.T) {
	router := setupBookingRouter(newTestStore(false))

	w := performRequest(t, router, http.MethodGet, "/slots/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slot models.TimeSlot
	decode(t, w, &slot)
	assert.Equal(t, "14:00", slot.Start)

	w = performRequest(t, router, http.MethodGet, "/dates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dates []map[string]string
	decode(t, w, &dates)
	require.Len(t, dates, 7)
	assert.Equal(t, testToday, dates[0]["date"])
	assert.Equal(t, "Thu, Jan 16", dates[1]["label"])
}
