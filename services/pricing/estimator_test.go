package pricing

import (
	"testing"

	"eliezerclean/models"

	"github.com/stretchr/testify/assert"
)

func TestQuoteHome(t *testing.T) {
	price, duration := Quote(models.ServiceHome, 80, nil)
	assert.Equal(t, 200.0, price)
	assert.Equal(t, "3-5 ore", duration)

	price, duration = Quote(models.ServiceHome, 60, nil)
	assert.Equal(t, 150.0, price)
	assert.Equal(t, "2-3 ore", duration)

	// Boundary: 70 m² and above gets the longer window.
	_, duration = Quote(models.ServiceHome, 70, nil)
	assert.Equal(t, "3-5 ore", duration)
	_, duration = Quote(models.ServiceHome, 69, nil)
	assert.Equal(t, "2-3 ore", duration)
}

func TestQuoteCarFlatRate(t *testing.T) {
	price, duration := Quote(models.ServiceCar, 0, nil)
	assert.Equal(t, 150.0, price)
	assert.Equal(t, "1-2 ore", duration)

	// Size is ignored for car detailing.
	price, _ = Quote(models.ServiceCar, 999, nil)
	assert.Equal(t, 150.0, price)
}

func TestQuoteOffice(t *testing.T) {
	price, duration := Quote(models.ServiceOffice, 100, nil)
	assert.Equal(t, 200.0, price)
	assert.Equal(t, "3-4 ore", duration)
}

func TestQuoteExtras(t *testing.T) {
	price, _ := Quote(models.ServiceHome, 80, []string{"windows"})
	assert.Equal(t, 250.0, price)

	price, _ = Quote(models.ServiceHome, 80, []string{"windows", "deep"})
	assert.Equal(t, 300.0, price)

	price, _ = Quote(models.ServiceCar, 0, []string{"polish", "leather"})
	assert.Equal(t, 250.0, price)
}

func TestQuoteNoService(t *testing.T) {
	price, duration := Quote("", 80, []string{"windows"})
	assert.Equal(t, 0.0, price)
	assert.Equal(t, "", duration)
}

func TestReprice(t *testing.T) {
	d := models.BookingDraft{ServiceType: models.ServiceHome, Size: 80, Extras: []string{"deep"}}
	Reprice(&d)
	assert.Equal(t, 250.0, d.EstimatedPrice)
	assert.Equal(t, "3-5 ore", d.EstimatedDuration)

	d.ServiceType = ""
	Reprice(&d)
	assert.Equal(t, 0.0, d.EstimatedPrice)
	assert.Equal(t, "", d.EstimatedDuration)
}
