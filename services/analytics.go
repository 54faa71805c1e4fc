package services

import (
	"math"
	"sort"
	"strings"

	"github.com/yeremiapane/cafe-app/models"
)

type SlotBookingCount struct {
	Slot  string `json:"slot"`
	Count int    `json:"count"`
}

// Analytics is the staff dashboard snapshot.
type Analytics struct {
	TotalBookingsToday int                `json:"total_bookings_today"`
	TotalCapacity      int                `json:"total_capacity"`
	DailyUtilization   int                `json:"daily_utilization"`
	MostBookedSlot     *models.TimeSlot   `json:"most_booked_slot"`
	BookingsPerSlot    []SlotBookingCount `json:"bookings_per_slot"`
}

// MostBookedSlot counts across all dates. On a tie the slot that appears first
// in the booking list wins. Nil when there are no bookings.
func (s *CafeStore) MostBookedSlot() *models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mostBookedSlotLocked()
}

func (s *CafeStore) mostBookedSlotLocked() *models.TimeSlot {
	counts := make(map[string]int)
	var order []string
	for _, b := range s.bookings {
		if counts[b.SlotStart] == 0 {
			order = append(order, b.SlotStart)
		}
		counts[b.SlotStart]++
	}

	best, top := "", 0
	for _, start := range order {
		if counts[start] > top {
			best, top = start, counts[start]
		}
	}
	if top == 0 {
		return nil
	}
	slot, ok := FindTimeSlot(best)
	if !ok {
		return nil
	}
	return &slot
}

// BookingsPerSlot covers today's bookings in the on-the-hour slots, labelled "08", "09", ...
func (s *CafeStore) BookingsPerSlot() []SlotBookingCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookingsPerSlotLocked()
}

func (s *CafeStore) bookingsPerSlotLocked() []SlotBookingCount {
	today := s.today()
	counts := make(map[string]int)
	for _, b := range s.bookings {
		if b.Date == today {
			counts[b.SlotStart]++
		}
	}

	var out []SlotBookingCount
	for i, slot := range TimeSlots {
		if i%2 != 0 {
			continue
		}
		out = append(out, SlotBookingCount{
			Slot:  strings.Replace(slot.Start, ":00", "", 1),
			Count: counts[slot.Start],
		})
	}
	return out
}

func (s *CafeStore) TotalBookingsToday() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalBookingsTodayLocked()
}

func (s *CafeStore) totalBookingsTodayLocked() int {
	today := s.today()
	n := 0
	for _, b := range s.bookings {
		if b.Date == today {
			n++
		}
	}
	return n
}

// TotalCapacity is the number of table-slots in one day.
func (s *CafeStore) TotalCapacity() int {
	return len(s.tables) * len(TimeSlots)
}

// DailyUtilization is today's bookings as a rounded percentage of capacity.
func (s *CafeStore) DailyUtilization() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dailyUtilizationLocked()
}

func (s *CafeStore) dailyUtilizationLocked() int {
	capacity := s.TotalCapacity()
	if capacity == 0 {
		return 0
	}
	return int(math.Round(float64(s.totalBookingsTodayLocked()) / float64(capacity) * 100))
}

// UpcomingReservations returns bookings whose slot has not started, ordered by
// date, slot and table. limit <= 0 returns all of them.
func (s *CafeStore) UpcomingReservations(limit int) []models.Booking {
	s.mu.RLock()
	now := s.now()
	var out []models.Booking
	for _, b := range s.bookings {
		if !IsSlotInPast(now, b.Date, b.SlotStart) {
			out = append(out, b)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].SlotStart != out[j].SlotStart {
			return out[i].SlotStart < out[j].SlotStart
		}
		return out[i].TableID < out[j].TableID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *CafeStore) Analytics() Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Analytics{
		TotalBookingsToday: s.totalBookingsTodayLocked(),
		TotalCapacity:      s.TotalCapacity(),
		DailyUtilization:   s.dailyUtilizationLocked(),
		MostBookedSlot:     s.mostBookedSlotLocked(),
		BookingsPerSlot:    s.bookingsPerSlotLocked(),
	}
}
