package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yeremiapane/cafe-app/statemachine"
	"github.com/yeremiapane/cafe-app/utils"
)

// OrderTracker simulates the kitchen: every tick each open order moves one step.
type OrderTracker struct {
	Store    *CafeStore
	StopChan chan struct{}
	Interval time.Duration

	stopOnce sync.Once
}

func NewOrderTracker(store *CafeStore, interval time.Duration) *OrderTracker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &OrderTracker{
		Store:    store,
		StopChan: make(chan struct{}),
		Interval: interval,
	}
}

func (ot *OrderTracker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(ot.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ot.Tick()
			case <-ctx.Done():
				return
			case <-ot.StopChan:
				return
			}
		}
	}()
}

func (ot *OrderTracker) Stop() {
	ot.stopOnce.Do(func() { close(ot.StopChan) })
}

// Tick advances every open order and returns how many moved.
func (ot *OrderTracker) Tick() int {
	moved := 0
	for _, id := range ot.Store.activeOrderIDs() {
		_, err := ot.Store.AdvanceOrder(id, statemachine.ActorSystem)
		switch {
		case err == nil:
			moved++
		case errors.Is(err, ErrOrderFinished), errors.Is(err, statemachine.ErrInvalidTransition):
			// staff moved it between listing and advancing
		default:
			utils.ErrorLogger.Errorf("Error advancing order %s: %v", id, err)
		}
	}
	if moved > 0 {
		utils.InfoLogger.Debugf("Tracker advanced %d orders", moved)
	}
	return moved
}
