package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eliezerclean/services/catalog"
	"eliezerclean/services/schedule"
)

// CatalogHandler serves the static service catalog and day availability.
type CatalogHandler struct {
	Logger *zap.Logger
	Now    func() time.Time
}

func NewCatalogHandler(logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Logger: logger, Now: time.Now}
}

// GetServices handles GET /api/booking/services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Services())
}

// GetServiceTypes handles GET /api/booking/service-types.
func (h *CatalogHandler) GetServiceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.ServiceTypes())
}

// GetAvailability handles GET /api/booking/availability?date=YYYY-MM-DD.
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date", "message": "provide a date query parameter as YYYY-MM-DD"})
		return
	}
	slots, err := schedule.Slots(date, h.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
