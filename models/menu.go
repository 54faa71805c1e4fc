package models

type SpiceLevel string

const (
	SpiceMild     SpiceLevel = "mild"
	SpiceMedium   SpiceLevel = "medium"
	SpiceHot      SpiceLevel = "hot"
	SpiceExtraHot SpiceLevel = "extra-hot"
)

type PortionSize string

const (
	PortionHalf   PortionSize = "half"
	PortionFull   PortionSize = "full"
	PortionFamily PortionSize = "family"
)

type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Topping struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MenuItem prices are whole rupees.
type MenuItem struct {
	ID                int                 `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Price             int                 `json:"price"`
	Category          MenuCategory        `json:"category"`
	Image             string              `json:"image"`
	CanCustomizeSpice bool                `json:"can_customize_spice"`
	DefaultSpice      SpiceLevel          `json:"default_spice,omitempty"`
	PortionPrices     map[PortionSize]int `json:"portion_prices,omitempty"`
	AvailableAddOns   []AddOn             `json:"available_add_ons,omitempty"`
	AvailableToppings []Topping           `json:"available_toppings,omitempty"`
}

// UnitPrice returns the price of one portion, falling back to the base price.
func (m MenuItem) UnitPrice(portion PortionSize) int {
	if p, ok := m.PortionPrices[portion]; ok {
		return p
	}
	return m.Price
}

// OffersPortion reports whether the item can be ordered in the given size.
// Items without portion pricing are only sold as a full portion.
func (m MenuItem) OffersPortion(portion PortionSize) bool {
	if len(m.PortionPrices) == 0 {
		return portion == PortionFull
	}
	_, ok := m.PortionPrices[portion]
	return ok
}

type SpiceLevelOption struct {
	ID          SpiceLevel `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
}

type PortionOption struct {
	ID    PortionSize `json:"id"`
	Label string      `json:"label"`
}
