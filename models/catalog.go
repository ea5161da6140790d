package models

// Service is one of the offerings presented on the site. Read-only reference data.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Wizard service types.
const (
	ServiceHome   = "home"
	ServiceCar    = "car"
	ServiceOffice = "office"
)

// Car categories. Descriptive only; they never change the price.
const (
	CarSmall  = "small"
	CarMedium = "medium"
	CarLarge  = "large"
)

// ServiceTypeInfo describes one selectable wizard service type.
type ServiceTypeInfo struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Extras []Extra  `json:"extras"`
	Sizes  *SizeRng `json:"sizes,omitempty"`
}

// Extra is an optional add-on. Each selected extra adds a flat amount to the price.
type Extra struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SizeRng bounds the size slider in square meters.
type SizeRng struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
