package routes

import (
	"net/http"
	"time"

	"eliezerclean/handlers"
	"eliezerclean/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.PATCH("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/advance", hb.AdvanceSession)
		bookingGroup.POST("/session/:sessionID/back", hb.BackSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)

		bookingGroup.GET("/services", hb.GetServices)
		bookingGroup.GET("/service-types", hb.GetServiceTypes)
		bookingGroup.GET("/availability", hb.GetAvailability)
	}
}

// RegisterContactRoutes sets up the contact form endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	contactGroup := r.Group("/api/contact")
	{
		contactGroup.POST("", hb.SubmitContact)
		contactGroup.GET("/subjects", hb.GetContactSubjects)
	}
}

// RegisterAIRoutes registers chat assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/chat", hb.AIChatHandler)
		api.GET("/status", hb.AIStatusHandler)
	}
}

// RegisterPreferenceRoutes registers per-client preference endpoints.
func RegisterPreferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/preferences")
	{
		api.GET("/:clientID", hb.GetPreferences)
		api.PUT("/:clientID", hb.SetPreferences)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterPreferenceRoutes(r, hb)
	RegisterHealthRoute(r)
}
