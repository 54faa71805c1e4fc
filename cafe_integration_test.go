package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/cafe-app/kds"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/router"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	utils.SetLogLevel("error")
	utils.InitJWT("integration-secret", time.Hour)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestEndToEndIntegration menguji flow utama:
// 1. Login customer dan staff
// 2. Booking meja untuk besok
// 3. Isi cart, set alamat, pakai kupon
// 4. Place order
// 5. Staff memajukan order sampai completed
// 6. Customer melihat tracking
func TestEndToEndIntegration(t *testing.T) {
	r := setupTestRouter()

	customer := loginTest(t, r, "customer")
	staff := loginTest(t, r, "staff")

	bookingTest(t, r, customer)
	orderID := placeOrderTest(t, r, customer)

	for _, want := range []models.OrderStatus{
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	} {
		resp := doRequest(t, r, http.MethodPost, "/staff/orders/"+orderID+"/advance", staff, nil, http.StatusOK)
		var order models.Order
		require.NoError(t, json.Unmarshal(resp.Data, &order))
		assert.Equal(t, want, order.Status)
	}

	// customer tidak boleh akses dashboard staff
	doRequest(t, r, http.MethodGet, "/staff/orders", customer, nil, http.StatusForbidden)

	resp := doRequest(t, r, http.MethodGet, "/orders/"+orderID+"/tracking", customer, nil, http.StatusOK)
	var tracking services.Tracking
	require.NoError(t, json.Unmarshal(resp.Data, &tracking))
	assert.Equal(t, models.OrderStatusCompleted, tracking.Status)
	assert.Equal(t, 0, tracking.RemainingMinutes)
	require.Len(t, tracking.Steps, 5)
	for _, step := range tracking.Steps[:4] {
		assert.Equal(t, services.StepCompleted, step.State)
	}

	doRequest(t, r, http.MethodDelete, "/session", customer, nil, http.StatusOK)
	doRequest(t, r, http.MethodGet, "/cart", customer, nil, http.StatusUnauthorized)
}

func setupTestRouter() *gin.Engine {
	now := time.Date(2025, 1, 15, 14, 10, 0, 0, time.UTC)
	store := services.NewCafeStore(services.Options{
		Now:      func() time.Time { return now },
		Location: time.UTC,
	})
	hub := kds.NewKDSHub()
	store.Subscribe(hub.Notify)

	return router.SetupRouter(router.Options{
		Store:          store,
		Hub:            hub,
		AllowedOrigins: []string{"*"},
	})
}

func doRequest(t *testing.T, r *gin.Engine, method, url, token string, body interface{}, wantCode int) apiResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != wantCode {
		t.Fatalf("%s %s: expected %d, got %d, body=%s", method, url, wantCode, w.Code, w.Body.String())
	}

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func loginTest(t *testing.T, r *gin.Engine, role string) string {
	resp := doRequest(t, r, http.MethodPost, "/session", "", map[string]string{"role": role}, http.StatusOK)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	if data.Token == "" {
		t.Fatalf("loginTest: token empty")
	}
	return data.Token
}

func bookingTest(t *testing.T, r *gin.Engine, token string) {
	booking := map[string]interface{}{"table_id": 4, "date": "2025-01-16", "slot_start": "19:00"}
	doRequest(t, r, http.MethodPost, "/bookings", token, booking, http.StatusCreated)
	doRequest(t, r, http.MethodPost, "/bookings", token, booking, http.StatusConflict)

	// slot yang sudah lewat
	past := map[string]interface{}{"table_id": 4, "date": "2025-01-15", "slot_start": "09:00"}
	doRequest(t, r, http.MethodPost, "/bookings", token, past, http.StatusUnprocessableEntity)

	resp := doRequest(t, r, http.MethodGet, "/tables/4/available-slots?date=2025-01-16", "", nil, http.StatusOK)
	var available struct {
		Slots []models.TimeSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &available))
	assert.Len(t, available.Slots, 27)
}

func placeOrderTest(t *testing.T, r *gin.Engine, token string) string {
	doRequest(t, r, http.MethodPost, "/cart/items", token, map[string]interface{}{
		"menu_item_id": 8,
		"quantity":     2,
	}, http.StatusCreated)

	doRequest(t, r, http.MethodPut, "/checkout/address", token, map[string]interface{}{
		"name":          "Ravi Kumar",
		"phone":         "9876543210",
		"address":       "12 MG Road, Bengaluru",
		"delivery_type": "delivery",
	}, http.StatusOK)
	doRequest(t, r, http.MethodPost, "/checkout/coupon", token, map[string]string{"code": "save10"}, http.StatusOK)

	resp := doRequest(t, r, http.MethodGet, "/checkout/summary", token, nil, http.StatusOK)
	var checkout struct {
		Summary        models.CheckoutSummary `json:"summary"`
		FormattedTotal string                 `json:"formatted_total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &checkout))
	// 160 + 8 tax + 50 delivery - 16 discount
	assert.Equal(t, 202, checkout.Summary.Total)
	assert.Equal(t, "₹202", checkout.FormattedTotal)

	resp = doRequest(t, r, http.MethodPost, "/checkout/place-order", token, map[string]string{"payment_method": "upi"}, http.StatusCreated)
	var order models.Order
	require.NoError(t, json.Unmarshal(resp.Data, &order))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 202, order.Total)
	assert.Equal(t, "Ravi Kumar", order.Address.Name)

	resp = doRequest(t, r, http.MethodGet, "/cart", token, nil, http.StatusOK)
	var cart struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &cart))
	assert.Equal(t, 0, cart.Count)

	return order.ID
}
