package models

// TimeSlot is a half-hour reservation window identified by its start time.
type TimeSlot struct {
	Start string `json:"start"` // "08:00"
	End   string `json:"end"`   // "08:30"
	Label string `json:"label"` // "8:00 AM - 8:30 AM"
}
