package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yeremiapane/cafe-app/models"
)

// CartItemRequest is what the customization sheet submits.
type CartItemRequest struct {
	MenuItemID          int                `json:"menu_item_id" binding:"required"`
	Quantity            int                `json:"quantity"`
	SpiceLevel          models.SpiceLevel  `json:"spice_level"`
	PortionSize         models.PortionSize `json:"portion_size"`
	AddOnIDs            []string           `json:"add_on_ids"`
	ToppingIDs          []string           `json:"topping_ids"`
	SpecialInstructions string             `json:"special_instructions"`
}

// NewCartItem prices a cart line: (portion price + add-ons) × quantity.
func (s *CafeStore) NewCartItem(req CartItemRequest) (models.CartItem, error) {
	item, ok := s.MenuItem(req.MenuItemID)
	if !ok {
		return models.CartItem{}, fmt.Errorf("menu item %d: %w", req.MenuItemID, ErrMenuItemNotFound)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	spice := req.SpiceLevel
	if item.CanCustomizeSpice {
		if spice == "" {
			spice = item.DefaultSpice
		}
		if !validSpiceLevel(spice) {
			return models.CartItem{}, fmt.Errorf("%q: %w", spice, ErrInvalidSpiceLevel)
		}
	} else if spice != "" {
		return models.CartItem{}, fmt.Errorf("%s has no spice options: %w", item.Name, ErrInvalidSpiceLevel)
	}

	portion := req.PortionSize
	if portion == "" {
		portion = models.PortionFull
	}
	if !item.OffersPortion(portion) {
		return models.CartItem{}, fmt.Errorf("%q: %w", portion, ErrInvalidPortion)
	}

	addOns, err := pickAddOns(item, req.AddOnIDs)
	if err != nil {
		return models.CartItem{}, err
	}
	toppings, err := pickToppings(item, req.ToppingIDs)
	if err != nil {
		return models.CartItem{}, err
	}

	unit := item.UnitPrice(portion)
	for _, a := range addOns {
		unit += a.Price
	}

	return models.CartItem{
		ID:                  uuid.New().String(),
		MenuItemID:          item.ID,
		Name:                item.Name,
		Price:               unit,
		Quantity:            quantity,
		SpiceLevel:          spice,
		PortionSize:         portion,
		SelectedAddOns:      addOns,
		SelectedToppings:    toppings,
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		ItemTotal:           unit * quantity,
	}, nil
}

func pickAddOns(item models.MenuItem, ids []string) ([]models.AddOn, error) {
	var out []models.AddOn
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		found := false
		for _, a := range item.AvailableAddOns {
			if a.ID == id {
				out = append(out, a)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%q: %w", id, ErrInvalidAddOn)
		}
	}
	return out, nil
}

func pickToppings(item models.MenuItem, ids []string) ([]models.Topping, error) {
	var out []models.Topping
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		found := false
		for _, t := range item.AvailableToppings {
			if t.ID == id {
				out = append(out, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%q: %w", id, ErrInvalidTopping)
		}
	}
	return out, nil
}

func (s *CafeStore) AddToCart(req CartItemRequest) (models.CartItem, error) {
	line, err := s.NewCartItem(req)
	if err != nil {
		return models.CartItem{}, err
	}

	s.mu.Lock()
	s.cart = append(s.cart, line)
	snapshot := s.cartSnapshotLocked()
	s.mu.Unlock()

	s.emit(models.EventCartUpdated, snapshot)
	return line, nil
}

func (s *CafeStore) RemoveFromCart(id string) error {
	s.mu.Lock()
	idx := s.cartIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrCartItemNotFound
	}
	s.cart = append(s.cart[:idx], s.cart[idx+1:]...)
	snapshot := s.cartSnapshotLocked()
	s.mu.Unlock()

	s.emit(models.EventCartUpdated, snapshot)
	return nil
}

// UpdateCartItem sets the quantity of a line; zero or less removes it.
func (s *CafeStore) UpdateCartItem(id string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(id)
	}

	s.mu.Lock()
	idx := s.cartIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrCartItemNotFound
	}
	line := &s.cart[idx]
	line.Quantity = quantity
	line.ItemTotal = line.Price * quantity
	snapshot := s.cartSnapshotLocked()
	s.mu.Unlock()

	s.emit(models.EventCartUpdated, snapshot)
	return nil
}

func (s *CafeStore) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	snapshot := s.cartSnapshotLocked()
	s.mu.Unlock()

	s.emit(models.EventCartUpdated, snapshot)
}

func (s *CafeStore) cartIndexLocked(id string) int {
	for i, line := range s.cart {
		if line.ID == id {
			return i
		}
	}
	return -1
}

func (s *CafeStore) CartItems() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCart(s.cart)
}

func copyCart(lines []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(lines))
	copy(out, lines)
	return out
}

func (s *CafeStore) CartSubtotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartSubtotalLocked()
}

func (s *CafeStore) cartSubtotalLocked() int {
	total := 0
	for _, line := range s.cart {
		total += line.ItemTotal
	}
	return total
}

// CartTotal is the amount payable, identical to the checkout summary total.
func (s *CafeStore) CartTotal() int {
	return s.CheckoutSummary().Total
}

// CartCount sums quantities, as shown on the cart badge.
func (s *CafeStore) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, line := range s.cart {
		n += line.Quantity
	}
	return n
}

// Cart is the cart drawer view.
type Cart struct {
	Items    []models.CartItem `json:"items"`
	Count    int               `json:"count"`
	Subtotal int               `json:"subtotal"`
}

func (s *CafeStore) Cart() Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartSnapshotLocked()
}

func (s *CafeStore) cartSnapshotLocked() Cart {
	c := Cart{Items: copyCart(s.cart), Subtotal: s.cartSubtotalLocked()}
	for _, line := range s.cart {
		c.Count += line.Quantity
	}
	return c
}
