package routes

import (
	"loki/internal/adapter/http/handlers"
	"loki/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathMe          = "/me"
	PathBookings    = "/bookings"
	PathCommissions = "/commissions"
)

// addAccountRoutes registers the signed-in user's routes.
func addAccountRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier, profileHandler *handlers.ProfileHandler, bookingHandler *handlers.BookingHandler, commissionHandler *handlers.CommissionHandler) {
	me := rg.Group(PathMe, middleware.RequireAuth(verifier))
	{
		me.GET("/profile", profileHandler.GetMyProfile)
		me.PUT("/profile", profileHandler.PutMyProfile)
		me.GET("/bookings", bookingHandler.ListMyBookings)
		me.GET("/owner/bookings", bookingHandler.ListOwnerBookings)
		me.GET("/commissions", commissionHandler.ListMyCommissions)
	}

	rg.GET(PathBookings+"/:id", middleware.RequireAuth(verifier), bookingHandler.GetBooking)
	rg.POST(PathCommissions+"/:id/pay", middleware.RequireAuth(verifier), commissionHandler.PayCommission)
}
