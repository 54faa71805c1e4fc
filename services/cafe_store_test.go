package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/cafe-app/models"
)

func TestUpdateSelection(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	events := recordEvents(store)

	sel, err := store.UpdateSelection(testTomorrow, "19:00")
	require.NoError(t, err)
	assert.Equal(t, testTomorrow, sel.SelectedDate)
	assert.Equal(t, "19:00", sel.SelectedSlot)
	require.Len(t, *events, 1)
	assert.Equal(t, models.EventSelectionUpdated, (*events)[0].Event)

	// slot only
	sel, err = store.UpdateSelection("", "09:30")
	require.NoError(t, err)
	assert.Equal(t, testTomorrow, sel.SelectedDate)
	assert.Equal(t, "09:30", sel.SelectedSlot)
}

func TestUpdateSelection_RejectsBeforeApplying(t *testing.T) {
	store, _ := newTestStore(t, testNow, false)
	before := store.Selection()
	events := recordEvents(store)

	_, err := store.UpdateSelection(testTomorrow, "19:31")
	assert.ErrorIs(t, err, ErrUnknownSlot)
	_, err = store.UpdateSelection("2025-13-40", "19:00")
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Equal(t, before, store.Selection())
	assert.Empty(t, *events)
}
