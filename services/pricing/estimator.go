// Package pricing implements the wizard's tariff table.
package pricing

import "eliezerclean/models"

// Per-extra flat surcharge in RON. Extras never alter the duration.
const extraPrice = 50.0

// Flat price for car detailing; the car category is descriptive only.
const carFlatPrice = 150.0

// Quote computes the estimated price (RON) and duration label for the given
// selections. It is pure: identical inputs always yield identical output.
func Quote(serviceType string, size int, extras []string) (float64, string) {
	var basePrice float64
	var duration string

	switch serviceType {
	case models.ServiceHome:
		basePrice = float64(size) * 2.5
		if size < 70 {
			duration = "2-3 ore"
		} else {
			duration = "3-5 ore"
		}
	case models.ServiceCar:
		basePrice = carFlatPrice
		duration = "1-2 ore"
	case models.ServiceOffice:
		basePrice = float64(size) * 2.0
		duration = "3-4 ore"
	default:
		return 0, ""
	}

	return basePrice + float64(len(extras))*extraPrice, duration
}

// Reprice recomputes the derived estimate fields on a draft in place, keeping
// them consistent with the current pricing-relevant fields.
func Reprice(d *models.BookingDraft) {
	d.EstimatedPrice, d.EstimatedDuration = Quote(d.ServiceType, d.Size, d.Extras)
}
