package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/handler"
)

// RegisterPublic registers the unauthenticated booking surface: the
// catalog listings, the slot endpoint and booking creation.  The read
// endpoints sit behind the response cache; everything public is rate
// limited.  Both middlewares degrade to pass-throughs when Redis is
// unavailable.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, b *handler.BookingHandler, cache, ratelimit echo.MiddlewareFunc) {
	g := e.Group("/v1", ratelimit)

	g.GET("/services", p.GetServices, cache)
	g.GET("/masters", p.GetMasters, cache)
	g.GET("/products", p.GetProducts, cache)

	// Slot lists go stale the moment someone books, so the cache TTL is
	// short and the commit-time conflict check backstops staleness.
	g.GET("/slots", b.GetSlots, cache)
	g.POST("/bookings", b.CreateBooking)
}
