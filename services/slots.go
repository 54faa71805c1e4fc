package services

import (
	"fmt"
	"time"

	"github.com/yeremiapane/cafe-app/models"
)

const (
	DateLayout = "2006-01-02"

	openingHour = 8
	closingHour = 22
	SlotMinutes = 30

	// WaitTimeMinutes is the estimate when every table is taken: one slot.
	WaitTimeMinutes = SlotMinutes
)

// TimeSlots is the fixed catalog, 08:00 to 22:00 in half-hour windows.
var TimeSlots = GenerateTimeSlots()

func GenerateTimeSlots() []models.TimeSlot {
	var slots []models.TimeSlot
	for m := openingHour * 60; m < closingHour*60; m += SlotMinutes {
		end := m + SlotMinutes
		slots = append(slots, models.TimeSlot{
			Start: clockString(m),
			End:   clockString(end),
			Label: twelveHour(m) + " - " + twelveHour(end),
		})
	}
	return slots
}

func clockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func twelveHour(minutes int) string {
	h, m := minutes/60, minutes%60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	switch {
	case h == 0:
		h = 12
	case h > 12:
		h -= 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, period)
}

// FindTimeSlot looks a slot up by its start time.
func FindTimeSlot(start string) (models.TimeSlot, bool) {
	for _, s := range TimeSlots {
		if s.Start == start {
			return s, true
		}
	}
	return models.TimeSlot{}, false
}

// CurrentTimeSlot returns the slot containing now, if the cafe is open.
func CurrentTimeSlot(now time.Time) (models.TimeSlot, bool) {
	hhmm := now.Format("15:04")
	for _, s := range TimeSlots {
		if s.Start <= hhmm && hhmm < s.End {
			return s, true
		}
	}
	return models.TimeSlot{}, false
}

// IsSlotInPast compares in the location of now. A slot that has started is past.
func IsSlotInPast(now time.Time, date, slotStart string) bool {
	today := now.Format(DateLayout)
	if date < today {
		return true
	}
	if date > today {
		return false
	}
	return slotStart <= now.Format("15:04")
}

func validDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// FormatDate renders "2025-01-15" as "Wed, Jan 15". Malformed input is returned as is.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// BookableDates lists today and the n-1 days after it.
func BookableDates(now time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}
