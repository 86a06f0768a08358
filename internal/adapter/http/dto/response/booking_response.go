package response

import (
	"loki/internal/domain/entities"
	"loki/internal/usecase"
	"time"
)

type BookingResponse struct {
	ID               string    `json:"id"`
	HouseID          string    `json:"house_id"`
	TenantID         string    `json:"tenant_id"`
	OwnerID          string    `json:"owner_id"`
	TenantName       string    `json:"tenant_name"`
	TenantPhone      string    `json:"tenant_phone"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	MoveInDate       string    `json:"move_in_date"`
	ReservationDates []string  `json:"reservation_dates"`
	Status           string    `json:"status"`
	CommissionFee    *int64    `json:"commission_fee"`
	MonthlyRent      float64   `json:"monthly_rent"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// BookingReceiptResponse returns the owner's phone alongside the new booking.
type BookingReceiptResponse struct {
	Booking    BookingResponse `json:"booking"`
	OwnerPhone string          `json:"owner_phone"`
}

type BookingWindowResponse struct {
	HouseID       string  `json:"house_id"`
	FirstDate     string  `json:"first_date"`
	LastDate      string  `json:"last_date"`
	MaxDates      int     `json:"max_dates"`
	CommissionFee *int64  `json:"commission_fee"`
	MonthlyRent   float64 `json:"monthly_rent"`
}

func FromBooking(b entities.BookingRequest) BookingResponse {
	dates := b.ReservationDates
	if dates == nil {
		dates = []string{}
	}
	return BookingResponse{
		ID:               b.ID,
		HouseID:          b.HouseID,
		TenantID:         b.TenantID,
		OwnerID:          b.OwnerID,
		TenantName:       b.TenantName,
		TenantPhone:      b.TenantPhone,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		MoveInDate:       b.MoveInDate,
		ReservationDates: dates,
		Status:           string(b.Status),
		CommissionFee:    b.CommissionFee,
		MonthlyRent:      b.MonthlyRent,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
	}
}

func FromBookings(in []entities.BookingRequest) []BookingResponse {
	out := make([]BookingResponse, 0, len(in))
	for _, b := range in {
		out = append(out, FromBooking(b))
	}
	return out
}

func FromBookingReceipt(r usecase.BookingReceipt) BookingReceiptResponse {
	return BookingReceiptResponse{Booking: FromBooking(r.Booking), OwnerPhone: r.OwnerPhone}
}

func FromBookingQuote(q usecase.BookingQuote) BookingWindowResponse {
	return BookingWindowResponse{
		HouseID:       q.HouseID,
		FirstDate:     q.Window.First,
		LastDate:      q.Window.Last,
		MaxDates:      entities.MaxReservationDates,
		CommissionFee: q.CommissionFee,
		MonthlyRent:   q.MonthlyRent,
	}
}
