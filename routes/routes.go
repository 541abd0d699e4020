package routes

import (
	"net/http"
	"time"

	"clipperz/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking form endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/book")
	{
		api.POST("", h.SubmitBooking)
		api.POST("/ics", h.DownloadInvite)
	}
}

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, h *handlers.ContactHandler) {
	r.POST("/api/contact", h.SubmitContact)
}

// RegisterCatalogRoutes registers the read-only salon catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", handlers.GetServices)
		api.GET("/add-ons", handlers.GetAddOns)
		api.GET("/barbers", handlers.GetBarbers)
		api.GET("/time-slots", handlers.GetTimeSlots)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CLIPPERZ"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, contactHandler *handlers.ContactHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bookingHandler)
	RegisterContactRoutes(r, contactHandler)
	RegisterCatalogRoutes(r)
	RegisterHealthRoute(r)
}
