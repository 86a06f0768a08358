package routes

import (
	"loki/internal/adapter/http/handlers"
	"loki/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathHouses = "/houses"

func addHouseRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier, houseHandler *handlers.HouseHandler, contactHandler *handlers.ContactHandler, bookingHandler *handlers.BookingHandler) {
	houses := rg.Group(PathHouses)
	{
		houses.GET("", houseHandler.ListHouses)
		houses.GET("/:id", houseHandler.GetHouse)
		houses.POST("", middleware.RequireAuth(verifier), houseHandler.CreateHouse)

		houses.GET("/:id/booking-window", bookingHandler.BookingWindow)
		houses.POST("/:id/contacts", middleware.OptionalAuth(verifier), contactHandler.InitiateContact)
		houses.POST("/:id/bookings", middleware.RequireAuth(verifier), bookingHandler.SubmitBooking)
	}
}
