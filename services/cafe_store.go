package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/utils"
)

type Options struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// Location defaults to time.Local.
	Location       *time.Location
	SeedSampleData bool
}

// CafeStore is the single process-wide state: tables, bookings, menu, cart,
// checkout, orders and the UI selection. Listeners are notified after every change.
type CafeStore struct {
	mu    sync.RWMutex
	clock func() time.Time
	loc   *time.Location

	tables   []models.Table
	bookings []models.Booking

	role         models.UserRole
	selectedDate string
	selectedSlot string

	cart           []models.CartItem
	checkout       models.Checkout
	orders         []*models.Order
	currentOrderID string

	listenersMu sync.RWMutex
	listeners   []func(models.Notification)
}

// Selection is the UI state shared by both dashboards.
type Selection struct {
	Role         models.UserRole `json:"role"`
	SelectedDate string          `json:"selected_date"`
	SelectedSlot string          `json:"selected_slot"`
}

func NewCafeStore(opts Options) *CafeStore {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	s := &CafeStore{
		clock:  opts.Now,
		loc:    opts.Location,
		tables: defaultTables(),
		checkout: models.Checkout{
			DeliveryType: models.DeliveryTypeDelivery,
		},
	}

	now := s.now()
	s.selectedDate = now.Format(DateLayout)
	if slot, ok := CurrentTimeSlot(now); ok {
		s.selectedSlot = slot.Start
	} else {
		s.selectedSlot = TimeSlots[0].Start
	}

	if opts.SeedSampleData {
		s.bookings = sampleBookings(now)
		utils.InfoLogger.Infof("Seeded %d sample bookings", len(s.bookings))
	}
	return s
}

// tables 1-4 seat two, 5-7 seat four, 8-10 seat six
func defaultTables() []models.Table {
	tables := make([]models.Table, 0, 10)
	for id := 1; id <= 10; id++ {
		capacity := 2
		switch {
		case id >= 8:
			capacity = 6
		case id >= 5:
			capacity = 4
		}
		tables = append(tables, models.Table{ID: id, Capacity: capacity})
	}
	return tables
}

func (s *CafeStore) now() time.Time {
	return s.clock().In(s.loc)
}

// Now returns the store clock in the cafe's location.
func (s *CafeStore) Now() time.Time {
	return s.now()
}

func (s *CafeStore) today() string {
	return s.now().Format(DateLayout)
}

// Subscribe registers fn for every store event. fn runs on the mutating goroutine
// after the store lock is released.
func (s *CafeStore) Subscribe(fn func(models.Notification)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *CafeStore) emit(event string, data interface{}) {
	n := models.Notification{Event: event, Data: data, CreatedAt: s.now()}

	s.listenersMu.RLock()
	listeners := append([]func(models.Notification){}, s.listeners...)
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(n)
	}
}

// Tables returns the static table list.
func (s *CafeStore) Tables() []models.Table {
	return append([]models.Table(nil), s.tables...)
}

func (s *CafeStore) Table(id int) (models.Table, bool) {
	for _, t := range s.tables {
		if t.ID == id {
			return t, true
		}
	}
	return models.Table{}, false
}

// SetUserRole accepts staff, customer, or "" for logged out.
func (s *CafeStore) SetUserRole(role models.UserRole) error {
	if role != "" && !role.Valid() {
		return ErrInvalidRole
	}
	s.mu.Lock()
	s.role = role
	sel := s.selectionLocked()
	s.mu.Unlock()

	s.emit(models.EventSelectionUpdated, sel)
	return nil
}

func (s *CafeStore) UserRole() models.UserRole {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *CafeStore) SetSelectedDate(date string) error {
	if !validDate(date) {
		return ErrInvalidDate
	}
	s.mu.Lock()
	s.selectedDate = date
	sel := s.selectionLocked()
	s.mu.Unlock()

	s.emit(models.EventSelectionUpdated, sel)
	return nil
}

func (s *CafeStore) SetSelectedSlot(slotStart string) error {
	if _, ok := FindTimeSlot(slotStart); !ok {
		return ErrUnknownSlot
	}
	s.mu.Lock()
	s.selectedSlot = slotStart
	sel := s.selectionLocked()
	s.mu.Unlock()

	s.emit(models.EventSelectionUpdated, sel)
	return nil
}

// UpdateSelection validates both fields before applying either. Empty fields are left unchanged.
func (s *CafeStore) UpdateSelection(date, slotStart string) (Selection, error) {
	if date != "" && !validDate(date) {
		return Selection{}, ErrInvalidDate
	}
	if slotStart != "" {
		if _, ok := FindTimeSlot(slotStart); !ok {
			return Selection{}, ErrUnknownSlot
		}
	}

	s.mu.Lock()
	if date != "" {
		s.selectedDate = date
	}
	if slotStart != "" {
		s.selectedSlot = slotStart
	}
	sel := s.selectionLocked()
	s.mu.Unlock()

	s.emit(models.EventSelectionUpdated, sel)
	return sel, nil
}

func (s *CafeStore) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectionLocked()
}

func (s *CafeStore) selectionLocked() Selection {
	return Selection{
		Role:         s.role,
		SelectedDate: s.selectedDate,
		SelectedSlot: s.selectedSlot,
	}
}
