package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TomSchuck/yardcrop/internal/api/handlers"
	"github.com/TomSchuck/yardcrop/internal/api/middleware"
	"github.com/TomSchuck/yardcrop/internal/config"
	"github.com/TomSchuck/yardcrop/internal/geocoding"
	"github.com/TomSchuck/yardcrop/internal/services"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(
	cfg *config.Config,
	listingService services.IListingService,
	flagService services.IFlagService,
	toastService services.IToastService,
	authService services.IAuthService,
	geocoder geocoding.IGeocoder,
) *gin.Engine {
	r := gin.Default()

	// Apply global middleware first (order matters)
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	restListingHandler := handlers.NewRestListingHandler(listingService, toastService)
	restFlagHandler := handlers.NewRestFlagHandler(flagService, listingService, toastService)
	restGeocodeHandler := handlers.NewRestGeocodeHandler(geocoder)
	restAuthHandler := handlers.NewRestAuthHandler(authService, toastService)
	restNotificationHandler := handlers.NewRestNotificationHandler(toastService)

	v1 := r.Group("/v1")
	{
		// Public listing routes - static segments before :id to avoid conflicts
		v1.GET("/listing", restListingHandler.SearchListings)
		v1.GET("/listing/bounds", restListingHandler.ListingsInBounds)
		v1.GET("/listing/counts", restListingHandler.CategoryCounts)
		v1.GET("/listing/pins", restListingHandler.MapPins)
		v1.GET("/listing/:id", restListingHandler.GetListingByID)
		v1.POST("/listing/:id/reveal", restListingHandler.RevealContact)

		// Moderation routes
		v1.POST("/listing/:id/flag", restFlagHandler.SubmitFlag)
		v1.GET("/listing/:id/flags", restFlagHandler.FlagStatus)

		// Geocoding
		v1.GET("/geocode/search", restGeocodeHandler.Search)

		// Notifications (toasts)
		v1.GET("/notifications", restNotificationHandler.ListNotifications)
		v1.DELETE("/notifications/:id", restNotificationHandler.DismissNotification)

		// Auth
		v1.POST("/auth/login", restAuthHandler.Login)
		v1.POST("/auth/signup", restAuthHandler.Signup)
		v1.POST("/auth/google", restAuthHandler.LoginWithGoogle)
		v1.POST("/auth/logout", restAuthHandler.Logout)
		v1.GET("/auth/me", restAuthHandler.CurrentUser)

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		// Authenticated Routes (rate limiting already applied globally)
		authRequired := v1.Group("/")
		authRequired.Use(middleware.AuthMiddleware(cfg.JwtSecret))
		{
			authRequired.POST("/listing", restListingHandler.CreateListing)
			authRequired.PUT("/listing/:id", restListingHandler.UpdateListing)
			authRequired.DELETE("/listing/:id", restListingHandler.DeleteListing)
			authRequired.POST("/listing/:id/toggle", restListingHandler.ToggleListingActive)
			authRequired.GET("/me/listing", restListingHandler.GetUserListings)
		}
	}

	return r
}
