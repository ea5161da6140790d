package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eliezerclean/models"
	"eliezerclean/services/prefs"
)

// PrefsHandler serves per-client UI preferences.
type PrefsHandler struct {
	Store  *prefs.Store
	Logger *zap.Logger
}

func NewPrefsHandler(store *prefs.Store, logger *zap.Logger) *PrefsHandler {
	return &PrefsHandler{Store: store, Logger: logger}
}

// GetPreferences handles GET /api/preferences/:clientID.
func (h *PrefsHandler) GetPreferences(c *gin.Context) {
	clientID := c.Param("clientID")
	p, err := h.Store.Get(c.Request.Context(), clientID)
	if err != nil {
		h.Logger.Error("GetPreferences: lookup failed", zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetPreferences handles PUT /api/preferences/:clientID.
func (h *PrefsHandler) SetPreferences(c *gin.Context) {
	clientID := c.Param("clientID")
	var p models.Preferences
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	if err := h.Store.Set(c.Request.Context(), clientID, p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferences", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
