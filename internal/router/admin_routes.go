package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/handler"
	"github.com/ermekov/barbershop-booking/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.  All
// routes require a valid JWT with the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Services ----
	g.GET("/services", a.ListServices)
	g.POST("/services", a.CreateService)
	g.PUT("/services/:id", a.UpdateService)
	g.DELETE("/services/:id", a.DeleteService)

	// ---- Masters ----
	g.GET("/masters", a.ListMasters)
	g.POST("/masters", a.CreateMaster)
	g.PUT("/masters/:id", a.UpdateMaster)
	g.DELETE("/masters/:id", a.DeleteMaster)

	// ---- Products ----
	g.GET("/products", a.ListProducts)
	g.POST("/products", a.CreateProduct)
	g.PUT("/products/:id", a.UpdateProduct)
	g.DELETE("/products/:id", a.DeleteProduct)

	// ---- Weekly schedule ----
	g.GET("/schedule", a.GetSchedule)
	g.PUT("/schedule", a.ReplaceSchedule)

	// ---- Blackouts ----
	g.GET("/blackouts", a.ListBlackouts)
	g.POST("/blackouts", a.CreateBlackout)
	g.DELETE("/blackouts/:id", a.DeleteBlackout)

	// ---- Bookings ----
	g.GET("/bookings", a.ListBookings)
	g.PATCH("/bookings/:id", a.UpdateBookingStatus)

	// ---- Stats and bookkeeping ----
	g.GET("/stats", a.GetStats)
	g.GET("/finance", a.ListFinance)
	g.GET("/finance/summary", a.GetFinanceSummary)
	g.POST("/finance", a.CreateFinance)
	g.PUT("/finance/:id", a.UpdateFinance)
	g.DELETE("/finance/:id", a.DeleteFinance)
}
