package models

type MenuCategory string

const (
	CategoryStarters    MenuCategory = "starters"
	CategoryMain        MenuCategory = "main"
	CategorySouthIndian MenuCategory = "south-indian"
	CategoryBeverages   MenuCategory = "beverages"
	CategoryDesserts    MenuCategory = "desserts"
)

type CategoryOption struct {
	ID    MenuCategory `json:"id"`
	Label string       `json:"label"`
	Emoji string       `json:"emoji"`
}
