package server

import (
	"auction-gateway/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the routes are bound to
type Dependencies struct {
	Session   handler.SessionManagerInterface
	Listings  handler.ListingServiceInterface
	Profiles  handler.ProfileServiceInterface
	Dashboard handler.DashboardCollector
	// FallbackAuth is set when a static bearer token is configured
	FallbackAuth bool
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware) // custom request logging

	authHandler := handler.NewAuthHandler(deps.Session)
	listingHandler := handler.NewListingHandler(deps.Listings, deps.Session)
	profileHandler := handler.NewProfileHandler(deps.Profiles, deps.Dashboard, deps.Session)

	requireAuth := RequireAuth(deps.Session, deps.FallbackAuth)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.LoginHandler)
		auth.POST("/register", authHandler.RegisterHandler)
		auth.POST("/logout", authHandler.LogoutHandler)
		auth.GET("/session", authHandler.SessionHandler)
		auth.POST("/api-key", requireAuth, authHandler.CreateAPIKeyHandler)
		auth.POST("/refresh", authHandler.RefreshHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("", listingHandler.GetListingsHandler)
		listings.GET("/search", listingHandler.SearchListingsHandler)
		listings.GET("/:id", listingHandler.GetListingHandler)
		listings.POST("", requireAuth, listingHandler.CreateListingHandler)
		listings.PUT("/:id", requireAuth, listingHandler.UpdateListingHandler)
		listings.DELETE("/:id", requireAuth, listingHandler.DeleteListingHandler)
		listings.POST("/:id/bids", requireAuth, listingHandler.PlaceBidHandler)
	}

	profiles := router.Group("/profiles", requireAuth)
	{
		profiles.GET("", profileHandler.GetProfilesHandler)
		profiles.GET("/search", profileHandler.SearchProfilesHandler)
		profiles.GET("/:name", profileHandler.GetProfileHandler)
		profiles.PUT("/:name", profileHandler.UpdateProfileHandler)
		profiles.GET("/:name/listings", profileHandler.GetProfileListingsHandler)
		profiles.GET("/:name/bids", profileHandler.GetProfileBidsHandler)
		profiles.GET("/:name/wins", profileHandler.GetProfileWinsHandler)
		profiles.GET("/:name/dashboard", profileHandler.DashboardHandler)
	}

	return router
}
