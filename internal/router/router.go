package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/unistay/student-housing/internal/config"     // cache and rate-limit settings
	"github.com/unistay/student-housing/internal/handler"    // import the handlers that implement business logic
	"github.com/unistay/student-housing/internal/middleware" // import middleware for identity, roles, cache and rate limiting
)

// RegisterRoutes registers routes that do not require identity on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The /healthz endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the public catalog browsing, bookmarking and
// review routes.  Read routes are cached and everything is rate limited;
// both middlewares degrade to pass-throughs when rdb is nil.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	g := e.Group("/v1", limiter)
	// Browsing endpoints are safe to cache; only GETs are configured for
	// caching so the mutations below pass straight through.
	g.GET("/properties", h.GetProperties, cache)
	g.GET("/properties/:id", h.GetProperty, cache)
	g.GET("/properties/:id/reviews", h.GetReviews, cache)
	// Review submission and bookmarking mutate catalog state.
	g.POST("/properties/:id/reviews", h.AddReview)
	g.POST("/properties/:id/bookmark", h.ToggleBookmark)
	g.GET("/bookmarks", h.GetBookmarks)
}

// RegisterBookings registers the booking lifecycle routes.  Creating a
// booking and messaging work for guests, so those routes only attach the
// optional identity middleware; the landlord decision endpoint requires
// a valid token carrying the LANDLORD role.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler, rdb *redis.Client, jwtSecret string) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	g := e.Group("/v1", limiter, middleware.OptionalIdentity(jwtSecret))
	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/:id", h.GetBooking)
	g.POST("/bookings", h.CreateBooking)
	g.POST("/bookings/:id/messages", h.AddMessage)

	// Landlord decisions live behind required authentication and the
	// LANDLORD role.
	decide := e.Group("/v1", limiter, middleware.JWTAuth(jwtSecret), middleware.RequireRole("LANDLORD"))
	decide.PATCH("/bookings/:id/status", h.UpdateStatus)
}
