package services

import (
	"time"

	"github.com/yeremiapane/cafe-app/models"
)

type sampleBooking struct {
	dayOffset int
	slotStart string
	tableIDs  []int
}

var sampleSchedule = []sampleBooking{
	// today
	{0, "08:00", []int{1}},
	{0, "08:30", []int{3}},
	{0, "09:00", []int{2}},
	{0, "09:30", []int{5}},
	{0, "10:00", []int{4}},
	{0, "10:30", []int{6}},
	{0, "12:00", []int{1, 2, 3, 4}},
	{0, "12:30", []int{5, 6, 7}},
	{0, "13:00", []int{8, 9, 10}},
	{0, "15:00", []int{2}},
	{0, "15:30", []int{4}},
	{0, "16:00", []int{7}},
	{0, "18:00", []int{1, 2, 3}},
	{0, "19:00", []int{5, 6, 7, 8}},
	{0, "19:30", []int{9, 10}},
	{0, "20:00", []int{1, 3}},
	{0, "20:30", []int{4, 5}},
	{0, "21:00", []int{8}},
	// tomorrow
	{1, "09:00", []int{1}},
	{1, "10:00", []int{2}},
	{1, "12:00", []int{3, 4}},
	{1, "12:30", []int{5}},
	{1, "13:00", []int{6}},
	{1, "18:30", []int{7}},
	{1, "19:00", []int{8}},
	{1, "19:30", []int{9}},
	{1, "20:00", []int{10}},
	// day after
	{2, "11:00", []int{2}},
	{2, "12:30", []int{4}},
	{2, "18:00", []int{6}},
	{2, "19:30", []int{8}},
}

// sampleBookings skips the past-slot check so today's board is populated at any hour.
func sampleBookings(now time.Time) []models.Booking {
	var bookings []models.Booking
	for _, entry := range sampleSchedule {
		slot, ok := FindTimeSlot(entry.slotStart)
		if !ok {
			continue
		}
		date := now.AddDate(0, 0, entry.dayOffset).Format(DateLayout)
		for _, tableID := range entry.tableIDs {
			bookings = append(bookings, models.Booking{
				TableID:   tableID,
				Date:      date,
				SlotStart: slot.Start,
				SlotEnd:   slot.End,
				BookedAt:  now,
			})
		}
	}
	return bookings
}
