package models

import "time"

// BookingDraft is the record accumulated across wizard steps.
// EstimatedPrice and EstimatedDuration are derived and recomputed on every
// update of a pricing-relevant field; they are never set directly.
type BookingDraft struct {
	ServiceType string   `json:"serviceType"`
	Size        int      `json:"size"`
	CarCategory string   `json:"carCategory,omitempty"`
	Extras      []string `json:"extras"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:MM
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Notes       string   `json:"notes,omitempty"`

	EstimatedPrice    float64 `json:"estimatedPrice"`
	EstimatedDuration string  `json:"estimatedDuration"`
}

// DraftUpdate carries a partial field update; nil fields are left untouched.
type DraftUpdate struct {
	ServiceType *string   `json:"serviceType,omitempty"`
	Size        *int      `json:"size,omitempty"`
	CarCategory *string   `json:"carCategory,omitempty"`
	Extras      *[]string `json:"extras,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// BookingSession holds wizard state between initiation and confirmation.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	Step      int          `json:"step"`
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`
}

// FieldError reports a single field rule failure. Field errors are values,
// not exceptions: they block step transitions, never the update itself.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ConfirmationResponse is returned after a successful final submission.
type ConfirmationResponse struct {
	Message           string  `json:"message"`
	ServiceLabel      string  `json:"serviceLabel"`
	Date              string  `json:"date"`
	Time              string  `json:"time"`
	EstimatedPrice    float64 `json:"estimatedPrice"`
	EstimatedDuration string  `json:"estimatedDuration"`
}
