package services

import (
	"testing"
	"time"

	"github.com/yeremiapane/cafe-app/models"
)

// 2025-01-15 is a Wednesday
var testNow = time.Date(2025, 1, 15, 14, 10, 0, 0, time.UTC)

const (
	testToday    = "2025-01-15"
	testTomorrow = "2025-01-16"
	testDayAfter = "2025-01-17"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T, now time.Time, seed bool) (*CafeStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: now}
	store := NewCafeStore(Options{
		Now:            clock.Now,
		Location:       time.UTC,
		SeedSampleData: seed,
	})
	return store, clock
}

func recordEvents(store *CafeStore) *[]models.Notification {
	var events []models.Notification
	store.Subscribe(func(n models.Notification) {
		events = append(events, n)
	})
	return &events
}
