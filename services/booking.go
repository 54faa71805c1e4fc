package services

import (
	"fmt"

	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/utils"
)

// AddBooking reserves a table for one slot on one date.
func (s *CafeStore) AddBooking(tableID int, date, slotStart string) (models.Booking, error) {
	if !validDate(date) {
		return models.Booking{}, ErrInvalidDate
	}
	if _, ok := s.Table(tableID); !ok {
		return models.Booking{}, fmt.Errorf("table %d: %w", tableID, ErrTableNotFound)
	}
	slot, ok := FindTimeSlot(slotStart)
	if !ok {
		return models.Booking{}, fmt.Errorf("slot %q: %w", slotStart, ErrUnknownSlot)
	}

	s.mu.Lock()
	now := s.now()
	if IsSlotInPast(now, date, slot.Start) {
		s.mu.Unlock()
		return models.Booking{}, ErrSlotInPast
	}
	if s.isBookedLocked(tableID, date, slot.Start) {
		s.mu.Unlock()
		return models.Booking{}, ErrSlotTaken
	}

	booking := models.Booking{
		TableID:   tableID,
		Date:      date,
		SlotStart: slot.Start,
		SlotEnd:   slot.End,
		BookedAt:  now,
	}
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()

	utils.InfoLogger.Infof("Table %d booked for %s %s", tableID, date, slot.Label)
	s.emit(models.EventBookingCreated, booking)
	return booking, nil
}

// CancelBooking removes the matching booking and reports whether one existed.
func (s *CafeStore) CancelBooking(tableID int, date, slotStart string) bool {
	s.mu.Lock()
	idx := -1
	for i, b := range s.bookings {
		if b.Matches(tableID, date, slotStart) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.bookings[idx]
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)
	s.mu.Unlock()

	utils.InfoLogger.Infof("Booking cancelled: table %d %s %s", tableID, date, slotStart)
	s.emit(models.EventBookingCancelled, removed)
	return true
}

func (s *CafeStore) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking(nil), s.bookings...)
}

func (s *CafeStore) BookingsForTable(tableID int) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.TableID == tableID {
			out = append(out, b)
		}
	}
	return out
}

func (s *CafeStore) BookingsForSlot(date, slotStart string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.Date == date && b.SlotStart == slotStart {
			out = append(out, b)
		}
	}
	return out
}

func (s *CafeStore) IsTableBookedForSlot(tableID int, date, slotStart string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isBookedLocked(tableID, date, slotStart)
}

func (s *CafeStore) isBookedLocked(tableID int, date, slotStart string) bool {
	for _, b := range s.bookings {
		if b.Matches(tableID, date, slotStart) {
			return true
		}
	}
	return false
}

// AvailableSlotsForTable lists the slots on date that are neither booked nor past.
func (s *CafeStore) AvailableSlotsForTable(tableID int, date string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := []models.TimeSlot{}
	for _, slot := range TimeSlots {
		if IsSlotInPast(now, date, slot.Start) || s.isBookedLocked(tableID, date, slot.Start) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

func (s *CafeStore) TableStatusForSlot(tableID int, date, slotStart string) models.TableStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tableStatusLocked(tableID, date, slotStart)
}

func (s *CafeStore) tableStatusLocked(tableID int, date, slotStart string) models.TableStatus {
	if !s.isBookedLocked(tableID, date, slotStart) {
		return models.TableStatusFree
	}

	now := s.now()
	if date == now.Format(DateLayout) {
		if slot, ok := FindTimeSlot(slotStart); ok {
			hhmm := now.Format("15:04")
			if slot.Start <= hhmm && hhmm < slot.End {
				return models.TableStatusOccupied
			}
		}
	}
	return models.TableStatusReserved
}

func (s *CafeStore) countTablesWithStatus(date, slotStart string, status models.TableStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.tables {
		if s.tableStatusLocked(t.ID, date, slotStart) == status {
			n++
		}
	}
	return n
}

func (s *CafeStore) FreeTablesForSlot(date, slotStart string) int {
	return s.countTablesWithStatus(date, slotStart, models.TableStatusFree)
}

func (s *CafeStore) OccupiedTablesForSlot(date, slotStart string) int {
	return s.countTablesWithStatus(date, slotStart, models.TableStatusOccupied)
}

func (s *CafeStore) ReservedTablesForSlot(date, slotStart string) int {
	return s.countTablesWithStatus(date, slotStart, models.TableStatusReserved)
}

// EstimatedWaitTime is zero while any table is free, otherwise one slot.
func (s *CafeStore) EstimatedWaitTime(date, slotStart string) int {
	if s.FreeTablesForSlot(date, slotStart) > 0 {
		return 0
	}
	return WaitTimeMinutes
}

// TableBoard returns every table with its status for the slot.
func (s *CafeStore) TableBoard(date, slotStart string) []models.TableSlotStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board := make([]models.TableSlotStatus, 0, len(s.tables))
	for _, t := range s.tables {
		board = append(board, models.TableSlotStatus{
			Table:  t,
			Status: s.tableStatusLocked(t.ID, date, slotStart),
		})
	}
	return board
}
