package handlers

import (
	"errors"
	"log"
	"loki/internal/adapter/http/dto/request"
	"loki/internal/adapter/http/dto/response"
	"loki/internal/adapter/http/middleware"
	"loki/internal/domain/entities"
	"loki/internal/usecase"
	"loki/internal/usecase/interfaces"
	"loki/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the multi-date booking flow.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// BookingWindow returns the selectable dates and the fee the request will carry.
// @Summary      Booking window for a house
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "House ID"
// @Success      200  {object}  response.BookingWindowResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /houses/{id}/booking-window [get]
func (h *BookingHandler) BookingWindow(c *gin.Context) {
	houseID := c.Param("id")
	quote, err := h.usecase.Quote(c.Request.Context(), houseID)
	if err != nil {
		log.Printf("[booking][handler] window failed house_id=%s err=%v", houseID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingQuote(quote))
}

// @Summary      Submit a booking request
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "House ID"
// @Param        booking  body      request.SubmitBookingRequest  true  "Picked dates"
// @Success      201      {object}  response.BookingReceiptResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /houses/{id}/bookings [post]
// @Security     Bearer
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	houseID := c.Param("id")
	session, _ := middleware.SessionFrom(c)

	var req request.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] submit start house_id=%s tenant_id=%s dates=%d", houseID, session.UserID, len(req.Dates))
	receipt, err := h.usecase.SubmitBooking(c.Request.Context(), usecase.SubmitBookingCommand{
		HouseID:     houseID,
		TenantID:    session.UserID,
		TenantName:  req.TenantName,
		TenantPhone: req.TenantPhone,
		Dates:       req.Dates,
		Message:     req.Message,
	})
	if err != nil {
		log.Printf("[booking][handler] submit failed house_id=%s tenant_id=%s err=%v", houseID, session.UserID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] submit success booking_id=%s house_id=%s", receipt.Booking.ID, houseID)
	c.JSON(http.StatusCreated, response.FromBookingReceipt(receipt))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	session, _ := middleware.SessionFrom(c)

	b, err := h.usecase.GetByID(c.Request.Context(), id, usecase.Viewer{UserID: session.UserID, IsAdmin: session.IsAdmin()})
	if err != nil {
		log.Printf("[booking][handler] get failed booking_id=%s user_id=%s err=%v", id, session.UserID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// ListMyBookings returns the bookings the caller submitted as a tenant.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)
	h.list(c, interfaces.BookingFilter{TenantID: session.UserID, Status: entities.BookingStatus(c.Query("status"))})
}

// ListOwnerBookings returns the bookings received on the caller's houses.
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)
	h.list(c, interfaces.BookingFilter{OwnerID: session.UserID, Status: entities.BookingStatus(c.Query("status"))})
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	h.list(c, interfaces.BookingFilter{Status: entities.BookingStatus(c.Query("status"))})
}

func (h *BookingHandler) list(c *gin.Context, filter interfaces.BookingFilter) {
	bookings, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[booking][handler] list failed tenant_id=%s owner_id=%s status=%s err=%v", filter.TenantID, filter.OwnerID, filter.Status, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHouseNotFound):
		return pkg.NewDomainErrorSimple("HOUSE_NOT_FOUND", "House not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Booking belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidHouseID), errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTenantDetails):
		return pkg.NewDomainErrorSimple("MISSING_TENANT_DETAILS", "Tenant name and phone are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoReservationDates):
		return pkg.NewDomainErrorSimple("NO_RESERVATION_DATES", "At least one reservation date is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBookingStatus):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING_STATUS", "Unknown booking status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidReservationDate):
		return pkg.NewDomainError("INVALID_RESERVATION_DATE", "Dates must use the YYYY-MM-DD format", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrReservationDateOutOfWindow):
		return pkg.NewDomainError("RESERVATION_DATE_OUT_OF_WINDOW", "Dates must fall between tomorrow and six months from today", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrTooManyReservationDates):
		return pkg.NewDomainError("TOO_MANY_RESERVATION_DATES", "Too many reservation dates", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
