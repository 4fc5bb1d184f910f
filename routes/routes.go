package routes

import (
	"net/http"
	"strings"
	"time"

	"booktrack/config"
	"booktrack/handlers"
	"booktrack/middleware"
	"booktrack/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and the current-account endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.Me)
	}
}

// RegisterCatalogRoutes registers public catalog browsing and provider CRUD.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.List)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo))
		protected.POST("", hb.Catalog.Create)
		protected.GET("/my-services", hb.Catalog.Mine)
		protected.PUT("/:id", hb.Catalog.Update)
		protected.DELETE("/:id", hb.Catalog.Delete)

		api.GET("/:id", hb.Catalog.Get)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.Create)
		api.GET("/my-bookings", hb.Booking.MyBookings)
		api.GET("/provider-requests", hb.Booking.ProviderRequests)
		api.GET("/:id", hb.Booking.Get)
		api.PUT("/:id/status", hb.Booking.UpdateStatus)
	}
}

// RegisterPaymentRoutes registers the mock payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("/create-checkout-session", hb.Payment.CreateCheckout)
		api.POST("/mock-payment/:bookingId", hb.Payment.ConfirmMock)
	}
}

// RegisterReviewRoutes registers review submission and per-service listing.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/service/:serviceId", hb.Review.ListByService)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo))
		protected.POST("", hb.Review.Create)
	}
}

// RegisterAdminRoutes registers the admin dashboard and moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("/stats", hb.Admin.Stats)
		api.GET("/users", hb.Admin.Users)
		api.PUT("/users/:id/block", hb.Admin.SetBlocked)
		api.DELETE("/users/:id", hb.Admin.DeleteUser)
		api.GET("/bookings", hb.Admin.Bookings)
	}
}

// RegisterRealtimeRoute registers the websocket endpoint for booking updates.
func RegisterRealtimeRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ws", hb.Realtime.Serve)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := strings.Split(config.AppConfig.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterRealtimeRoute(r, hb)
	RegisterHealthRoute(r)
}
