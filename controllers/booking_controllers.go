package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

const bookableDays = 7

type BookingController struct {
	Store *services.CafeStore
}

func NewBookingController(store *services.CafeStore) *BookingController {
	return &BookingController{Store: store}
}

type bookingRequest struct {
	TableID   int    `json:"table_id" form:"table_id" binding:"required"`
	Date      string `json:"date" form:"date" binding:"required"`
	SlotStart string `json:"slot_start" form:"slot_start" binding:"required"`
}

// CreateBooking -> pesan satu meja untuk satu slot
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Store.AddBooking(req.TableID, req.Date, req.SlotStart)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// CancelBooking takes the booking key in the query string.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !bc.Store.CancelBooking(req.TableID, req.Date, req.SlotStart) {
		utils.RespondJSON(c, http.StatusNotFound, "Booking not found", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking cancelled", nil)
}

// GetBookings filters by date, and by slot when given.
func (bc *BookingController) GetBookings(c *gin.Context) {
	date := c.Query("date")
	slot := c.Query("slot")

	var bookings []models.Booking
	switch {
	case date != "" && slot != "":
		bookings = bc.Store.BookingsForSlot(date, slot)
	case date != "":
		for _, b := range bc.Store.Bookings() {
			if b.Date == date {
				bookings = append(bookings, b)
			}
		}
	default:
		bookings = bc.Store.Bookings()
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

func (bc *BookingController) GetUpcoming(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		var err error
		if limit, err = parsePositiveInt(raw); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	upcoming := bc.Store.UpcomingReservations(limit)
	if upcoming == nil {
		upcoming = []models.Booking{}
	}
	utils.RespondJSON(c, http.StatusOK, "Upcoming reservations", upcoming)
}

type slotView struct {
	models.TimeSlot
	IsPast bool `json:"is_past"`
}

// GetSlots -> katalog slot dengan penanda slot yang sudah lewat
func (bc *BookingController) GetSlots(c *gin.Context) {
	now := bc.Store.Now()
	date := c.DefaultQuery("date", now.Format(services.DateLayout))
	if !validDateParam(c, date) {
		return
	}

	views := make([]slotView, 0, len(services.TimeSlots))
	for _, s := range services.TimeSlots {
		views = append(views, slotView{TimeSlot: s, IsPast: services.IsSlotInPast(now, date, s.Start)})
	}
	utils.RespondJSON(c, http.StatusOK, "List of time slots", views)
}

func (bc *BookingController) GetCurrentSlot(c *gin.Context) {
	slot, ok := services.CurrentTimeSlot(bc.Store.Now())
	if !ok {
		utils.RespondJSON(c, http.StatusOK, "Cafe is closed", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current time slot", slot)
}

// GetDates -> tanggal yang bisa dipilih di booking modal
func (bc *BookingController) GetDates(c *gin.Context) {
	dates := services.BookableDates(bc.Store.Now(), bookableDays)
	out := make([]gin.H, 0, len(dates))
	for _, d := range dates {
		out = append(out, gin.H{"date": d, "label": services.FormatDate(d)})
	}
	utils.RespondJSON(c, http.StatusOK, "Bookable dates", out)
}

func validDateParam(c *gin.Context, date string) bool {
	if _, err := time.Parse(services.DateLayout, date); err != nil {
		respondStoreError(c, services.ErrInvalidDate)
		return false
	}
	return true
}
