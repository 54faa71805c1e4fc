package models

// TableStatus is derived from bookings and the clock, never stored.
type TableStatus string

const (
	TableStatusFree     TableStatus = "free"
	TableStatusOccupied TableStatus = "occupied"
	TableStatusReserved TableStatus = "reserved"
)

type Table struct {
	ID       int `json:"id"`
	Capacity int `json:"capacity"`
}

// TableSlotStatus is one cell of the floor board for a date and slot.
type TableSlotStatus struct {
	Table  Table       `json:"table"`
	Status TableStatus `json:"status"`
}
