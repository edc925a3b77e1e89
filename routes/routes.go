package routes

import (
	"net/http"
	"time"

	"carelink/config"
	"carelink/handlers"
	"carelink/middleware"
	"carelink/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup and login. These are the only public
// endpoints, so they carry the per-IP rate limiter.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
		api.POST("/signup", hb.Auth.Signup)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterBookingRoutes sets up the visit lifecycle endpoints. Creation is
// patient-only and the caregiver-side transitions are caregiver-only; reads
// and cancellation are open to both sides, with ownership enforced in the
// service layer.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.JWTAuthMiddleware(models.RolePatient), hb.Booking.CreateBookingRequest)

		caregiver := api.Group("")
		caregiver.Use(middleware.JWTAuthMiddleware(models.RoleCaregiver))
		caregiver.POST("/:id/accept", hb.Booking.AcceptBooking)
		caregiver.POST("/:id/start", hb.Booking.StartBookingSession)
		caregiver.POST("/:id/complete", hb.Booking.CompleteBooking)

		shared := api.Group("")
		shared.Use(middleware.JWTAuthMiddleware())
		shared.POST("/:id/cancel", hb.Booking.CancelBooking)
		shared.GET("/:id", hb.Booking.GetBookingDetails)
	}
}

// RegisterAvailabilityRoutes registers caregiver schedule lookups.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/caregivers")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:id/availability", hb.Availability.GetCaregiverAvailability)
	}
}

// RegisterMessagingRoutes registers the message content filter.
func RegisterMessagingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/filter", hb.Messaging.FilterMessage)
	}
}

// RegisterDeviceRoutes registers push-registration upkeep.
func RegisterDeviceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/devices")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/fcm-token", hb.Device.UpdateFCMToken)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterMessagingRoutes(r, hb)
	RegisterDeviceRoutes(r, hb)
	RegisterHealthRoute(r)
}
