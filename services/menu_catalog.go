package services

import (
	"github.com/yeremiapane/cafe-app/models"
)

var categories = []models.CategoryOption{
	{ID: models.CategoryStarters, Label: "Starters", Emoji: "🥟"},
	{ID: models.CategoryMain, Label: "Main Course", Emoji: "🍛"},
	{ID: models.CategorySouthIndian, Label: "South Indian Specials", Emoji: "🥞"},
	{ID: models.CategoryBeverages, Label: "Beverages", Emoji: "☕"},
	{ID: models.CategoryDesserts, Label: "Desserts", Emoji: "🍰"},
}

var spiceLevels = []models.SpiceLevelOption{
	{ID: models.SpiceMild, Label: "Mild", Description: "Gentle and subtle"},
	{ID: models.SpiceMedium, Label: "Medium", Description: "Balanced heat"},
	{ID: models.SpiceHot, Label: "Hot", Description: "Spicy kick"},
	{ID: models.SpiceExtraHot, Label: "Extra Hot", Description: "Intense heat"},
}

var portionSizes = []models.PortionOption{
	{ID: models.PortionHalf, Label: "Half"},
	{ID: models.PortionFull, Label: "Full"},
	{ID: models.PortionFamily, Label: "Family"},
}

var (
	addOnExtraPaneer = models.AddOn{ID: "extra-paneer", Name: "Extra Paneer", Price: 60}
	addOnExtraCheese = models.AddOn{ID: "extra-cheese", Name: "Extra Cheese", Price: 40}
	addOnRaita       = models.AddOn{ID: "raita", Name: "Raita", Price: 30}
	addOnButter      = models.AddOn{ID: "butter", Name: "Extra Butter", Price: 20}
	addOnChutney     = models.AddOn{ID: "extra-chutney", Name: "Extra Chutney", Price: 15}

	toppingOnion      = models.Topping{ID: "onion", Name: "Onion"}
	toppingCoriander  = models.Topping{ID: "coriander", Name: "Coriander"}
	toppingCashew     = models.Topping{ID: "cashew", Name: "Cashew"}
	toppingGreenChili = models.Topping{ID: "green-chili", Name: "Green Chili"}
)

var menuItems = []models.MenuItem{
	{
		ID: 1, Name: "Gobi Manchurian", Price: 180, Category: models.CategoryStarters,
		Description:       "Crispy cauliflower florets tossed in a spicy Indo-Chinese sauce with bell peppers and onions.",
		Image:             "/gobi-manchurian-crispy-cauliflower-indo-chinese-di.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMedium,
		PortionPrices:     map[models.PortionSize]int{models.PortionHalf: 110, models.PortionFull: 180},
		AvailableToppings: []models.Topping{toppingOnion, toppingGreenChili},
	},
	{
		ID: 2, Name: "Paneer Tikka", Price: 220, Category: models.CategoryStarters,
		Description:       "Marinated cottage cheese cubes grilled to perfection in a tandoor with mint chutney.",
		Image:             "/paneer-tikka-grilled-indian-appetizer.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMild,
		PortionPrices:     map[models.PortionSize]int{models.PortionHalf: 130, models.PortionFull: 220},
		AvailableAddOns:   []models.AddOn{addOnExtraPaneer, addOnChutney},
		AvailableToppings: []models.Topping{toppingOnion},
	},
	{
		ID: 3, Name: "Baby Corn 65", Price: 160, Category: models.CategoryStarters,
		Description:       "Tender baby corn coated in spiced batter and deep-fried until golden and crispy.",
		Image:             "/baby-corn-65-crispy-fried-indian-starter.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceHot,
		AvailableToppings: []models.Topping{toppingCoriander},
	},
	{
		ID: 4, Name: "Veg Biryani", Price: 250, Category: models.CategoryMain,
		Description:       "Aromatic basmati rice layered with mixed vegetables, herbs, and traditional spices.",
		Image:             "/vegetable-biryani-indian-rice-dish.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMedium,
		PortionPrices: map[models.PortionSize]int{
			models.PortionHalf: 150, models.PortionFull: 250, models.PortionFamily: 450,
		},
		AvailableAddOns:   []models.AddOn{addOnRaita, addOnExtraPaneer},
		AvailableToppings: []models.Topping{toppingCashew, toppingOnion, toppingCoriander},
	},
	{
		ID: 5, Name: "Paneer Butter Masala", Price: 280, Category: models.CategoryMain,
		Description:       "Soft paneer cubes in a rich, creamy tomato-based gravy with aromatic spices.",
		Image:             "/paneer-butter-masala-creamy-indian-curry.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMild,
		PortionPrices: map[models.PortionSize]int{
			models.PortionHalf: 170, models.PortionFull: 280, models.PortionFamily: 500,
		},
		AvailableAddOns:   []models.AddOn{addOnExtraPaneer, addOnButter},
		AvailableToppings: []models.Topping{toppingCoriander},
	},
	{
		ID: 6, Name: "Dal Makhani", Price: 200, Category: models.CategoryMain,
		Description:       "Slow-cooked black lentils simmered in butter and cream with Indian spices.",
		Image:             "/dal-makhani-black-lentils-indian-dish.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMild,
		PortionPrices:     map[models.PortionSize]int{models.PortionHalf: 120, models.PortionFull: 200},
		AvailableAddOns:   []models.AddOn{addOnButter},
	},
	{
		ID: 7, Name: "Masala Dosa", Price: 120, Category: models.CategorySouthIndian,
		Description:       "Crispy rice crepe filled with spiced potato masala, served with sambar and chutneys.",
		Image:             "/masala-dosa-crispy-south-indian-crepe-with-potato-.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMedium,
		AvailableAddOns:   []models.AddOn{addOnExtraCheese, addOnButter, addOnChutney},
		AvailableToppings: []models.Topping{toppingOnion},
	},
	{
		ID: 8, Name: "Idli Sambar", Price: 80, Category: models.CategorySouthIndian,
		Description:       "Steamed rice cakes served with aromatic lentil soup and coconut chutney.",
		Image:             "/idli-sambar-south-indian-breakfast.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMild,
		AvailableAddOns:   []models.AddOn{addOnChutney},
	},
	{
		ID: 9, Name: "Medu Vada", Price: 70, Category: models.CategorySouthIndian,
		Description:       "Crispy fried lentil donuts served with sambar and fresh coconut chutney.",
		Image:             "/medu-vada-crispy-south-indian-lentil-donut.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMedium,
		AvailableAddOns:   []models.AddOn{addOnChutney},
	},
	{
		ID: 10, Name: "Uttapam", Price: 100, Category: models.CategorySouthIndian,
		Description:       "Thick rice pancake topped with onions, tomatoes, and green chilies.",
		Image:             "/uttapam-south-indian-pancake-with-vegetables.jpg",
		CanCustomizeSpice: true, DefaultSpice: models.SpiceMedium,
		AvailableAddOns:   []models.AddOn{addOnExtraCheese},
		AvailableToppings: []models.Topping{toppingOnion, toppingGreenChili, toppingCoriander},
	},
	{
		ID: 11, Name: "Filter Coffee", Price: 40, Category: models.CategoryBeverages,
		Description: "Traditional South Indian coffee brewed fresh and served in a steel tumbler.",
		Image:       "/south-indian-filter-coffee-steel-tumbler.jpg",
	},
	{
		ID: 12, Name: "Masala Tea", Price: 35, Category: models.CategoryBeverages,
		Description: "Aromatic tea infused with cardamom, ginger, and traditional spices.",
		Image:       "/masala-chai-indian-spiced-tea.jpg",
	},
	{
		ID: 13, Name: "Fresh Lime Soda", Price: 50, Category: models.CategoryBeverages,
		Description: "Refreshing lime juice with soda water, available sweet or salted.",
		Image:       "/fresh-lime-soda-refreshing-drink.jpg",
	},
	{
		ID: 14, Name: "Mango Lassi", Price: 80, Category: models.CategoryBeverages,
		Description: "Creamy yogurt drink blended with sweet Alphonso mangoes.",
		Image:       "/mango-lassi-indian-yogurt-drink.jpg",
	},
	{
		ID: 15, Name: "Gulab Jamun", Price: 80, Category: models.CategoryDesserts,
		Description: "Soft milk dumplings soaked in rose-flavored sugar syrup, served warm.",
		Image:       "/gulab-jamun-indian-sweet-dessert-in-syrup.jpg",
	},
	{
		ID: 16, Name: "Ice Cream", Price: 90, Category: models.CategoryDesserts,
		Description:       "Creamy homemade ice cream in flavors like mango, pistachio, and butterscotch.",
		Image:             "/indian-ice-cream-mango-pistachio-kulfi.jpg",
		AvailableToppings: []models.Topping{toppingCashew},
	},
	{
		ID: 17, Name: "Kesari Bath", Price: 70, Category: models.CategoryDesserts,
		Description: "Traditional semolina pudding flavored with saffron, ghee, and cashews.",
		Image:       "/kesari-bath-saffron-semolina-halwa.jpg",
	},
	{
		ID: 18, Name: "Rasmalai", Price: 100, Category: models.CategoryDesserts,
		Description: "Soft cottage cheese patties in sweetened, cardamom-infused milk.",
		Image:       "/rasmalai-indian-milk-dessert.jpg",
	},
}

// MenuItems filters by category; "" and "all" return the whole menu.
func (s *CafeStore) MenuItems(category string) []models.MenuItem {
	if category == "" || category == "all" {
		return append([]models.MenuItem(nil), menuItems...)
	}
	out := []models.MenuItem{}
	for _, item := range menuItems {
		if string(item.Category) == category {
			out = append(out, item)
		}
	}
	return out
}

func (s *CafeStore) MenuItem(id int) (models.MenuItem, bool) {
	for _, item := range menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (s *CafeStore) Categories() []models.CategoryOption {
	return categories
}

func (s *CafeStore) SpiceLevels() []models.SpiceLevelOption {
	return spiceLevels
}

func (s *CafeStore) PortionSizes() []models.PortionOption {
	return portionSizes
}

func validSpiceLevel(level models.SpiceLevel) bool {
	for _, s := range spiceLevels {
		if s.ID == level {
			return true
		}
	}
	return false
}
