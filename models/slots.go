package models

// TimeSlot is one bookable hour in the availability view.
// Availability is placeholder data, not real provider capacity.
type TimeSlot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
	Optimal   bool   `json:"optimal"`
}
