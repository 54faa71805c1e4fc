package models

// CartItem is one line of the cart; it is copied verbatim into an order.
type CartItem struct {
	ID                  string      `json:"id"`
	MenuItemID          int         `json:"menu_item_id"`
	Name                string      `json:"name"`
	Price               int         `json:"price"` // unit price incl. add-ons
	Quantity            int         `json:"quantity"`
	SpiceLevel          SpiceLevel  `json:"spice_level,omitempty"`
	PortionSize         PortionSize `json:"portion_size,omitempty"`
	SelectedAddOns      []AddOn     `json:"selected_add_ons,omitempty"`
	SelectedToppings    []Topping   `json:"selected_toppings,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	ItemTotal           int         `json:"item_total"`
}
