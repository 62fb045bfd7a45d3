package routes

import (
	"net/http"
	"time"

	"equibook/handlers"
	"equibook/middleware"
	"equibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the public wizard and availability endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/services", hb.GetCatalogue)
		api.GET("/availability", hb.DaySlots)

		api.POST("/session", hb.StartSession)
		api.GET("/session/:sessionID", hb.GetSession)
		api.PUT("/session/:sessionID/service", hb.SubmitService)
		api.PUT("/session/:sessionID/slot", hb.SubmitSlot)
		api.PUT("/session/:sessionID/contact", hb.SubmitContact)
		api.POST("/session/:sessionID/back", hb.StepBack)
		api.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		api.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations. Everything
// except login sits behind the JWT middleware.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLogin)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("/bookings", hb.AdminListBookings)
		protected.PATCH("/bookings/:id/status", hb.AdminUpdateStatus)
		protected.DELETE("/bookings/:id", hb.AdminDeleteBooking)
		protected.GET("/bookings/stats", hb.AdminStats)
		protected.GET("/bookings/export", hb.AdminExportCSV)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
