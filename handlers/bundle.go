package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking wizard endpoints.
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	AdvanceSession  gin.HandlerFunc
	BackSession     gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Catalog endpoints.
	GetServices     gin.HandlerFunc
	GetServiceTypes gin.HandlerFunc
	GetAvailability gin.HandlerFunc

	// Contact endpoints.
	SubmitContact      gin.HandlerFunc
	GetContactSubjects gin.HandlerFunc

	// Assistant endpoints.
	AIChatHandler   gin.HandlerFunc
	AIStatusHandler gin.HandlerFunc

	// Preference endpoints.
	GetPreferences gin.HandlerFunc
	SetPreferences gin.HandlerFunc
}
