package routes

import (
	"loki/internal/adapter/http/handlers"
	"loki/internal/adapter/http/middleware"
	"loki/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier, contactHandler *handlers.ContactHandler, bookingHandler *handlers.BookingHandler, commissionHandler *handlers.CommissionHandler, dashboardHandler *handlers.DashboardHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireAuth(verifier), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/contacts", contactHandler.ListContacts)
		admin.GET("/contacts/:id", contactHandler.GetContact)
		admin.PATCH("/contacts/:id/advance", contactHandler.AdvanceContact)
		admin.GET("/bookings", bookingHandler.ListBookings)
		admin.GET("/commissions", commissionHandler.ListCommissions)
		admin.GET("/stats", dashboardHandler.Stats)
	}
}
