package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostBookedSlot(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	assert.Nil(t, store.MostBookedSlot())

	seeded, _ := newTestStore(t, testNow, true)
	slot := seeded.MostBookedSlot()
	require.NotNil(t, slot)
	assert.Equal(t, "12:00", slot.Start)
}

func TestMostBookedSlot_TieKeepsFirst(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	_, err := store.AddBooking(1, testTomorrow, "19:00")
	require.NoError(t, err)
	_, err = store.AddBooking(1, testTomorrow, "09:00")
	require.NoError(t, err)
	_, err = store.AddBooking(2, testTomorrow, "09:00")
	require.NoError(t, err)
	_, err = store.AddBooking(2, testTomorrow, "19:00")
	require.NoError(t, err)

	// 19:00 was booked first, 09:00 reached two bookings first
	slot := store.MostBookedSlot()
	require.NotNil(t, slot)
	assert.Equal(t, "19:00", slot.Start)
}

func TestMostBookedSlot_HigherCountBeatsEarlier(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	_, err := store.AddBooking(1, testTomorrow, "19:00")
	require.NoError(t, err)
	_, err = store.AddBooking(1, testTomorrow, "09:00")
	require.NoError(t, err)
	_, err = store.AddBooking(2, testTomorrow, "09:00")
	require.NoError(t, err)

	slot := store.MostBookedSlot()
	require.NotNil(t, slot)
	assert.Equal(t, "09:00", slot.Start)
}

func TestBookingsPerSlot(t *testing.T) {
	store, _ := newTestStore(t, testNow, true)

	perSlot := store.BookingsPerSlot()
	require.Len(t, perSlot, 14)
	assert.Equal(t, "08", perSlot[0].Slot)
	assert.Equal(t, 1, perSlot[0].Count)
	assert.Equal(t, "12", perSlot[4].Slot)
	assert.Equal(t, 4, perSlot[4].Count)
	assert.Equal(t, "21", perSlot[13].Slot)
	assert.Equal(t, 1, perSlot[13].Count)
	// 11:00 has nothing today
	assert.Equal(t, 0, perSlot[3].Count)
}

func TestDailyUtilization(t *testing.T) {
	store, _ := newTestStore(t, testNow, true)
	assert.Equal(t, 280, store.TotalCapacity())
	// 33 of 280 table-slots
	assert.Equal(t, 12, store.DailyUtilization())

	empty, _ := newTestStore(t, testNow, false)
	assert.Equal(t, 0, empty.DailyUtilization())
}

func TestUpcomingReservations(t *testing.T) {
	store, _ := newTestStore(t, testNow, true)

	all := store.UpcomingReservations(0)
	assert.Len(t, all, 31)
	assert.Equal(t, testToday, all[0].Date)
	assert.Equal(t, "15:00", all[0].SlotStart)
	assert.Equal(t, 2, all[0].TableID)

	last := all[len(all)-1]
	assert.Equal(t, testDayAfter, last.Date)
	assert.Equal(t, "19:30", last.SlotStart)

	top := store.UpcomingReservations(5)
	require.Len(t, top, 5)
	// 18:00 on three tables, ordered by table
	assert.Equal(t, []int{1, 2}, []int{top[3].TableID, top[4].TableID})
}

func TestAnalyticsSnapshot(t *testing.T) {
	store, _ := newTestStore(t, testNow, true)
	a := store.Analytics()
	assert.Equal(t, 33, a.TotalBookingsToday)
	assert.Equal(t, 280, a.TotalCapacity)
	assert.Equal(t, 12, a.DailyUtilization)
	require.NotNil(t, a.MostBookedSlot)
	assert.Len(t, a.BookingsPerSlot, 14)
}
