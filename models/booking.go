package models

import "time"

type Booking struct {
	TableID   int       `json:"table_id"`
	Date      string    `json:"date"`       // "2025-01-15"
	SlotStart string    `json:"slot_start"` // "08:00"
	SlotEnd   string    `json:"slot_end"`   // "08:30"
	BookedAt  time.Time `json:"booked_at"`
}

// Matches reports whether b occupies the given table, date and slot start.
func (b Booking) Matches(tableID int, date, slotStart string) bool {
	return b.TableID == tableID && b.Date == date && b.SlotStart == slotStart
}
