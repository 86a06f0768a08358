package entities

import "time"

// BookingStatus is the lifecycle of a booking request. Requests are created
// pending; confirmation and cancellation happen outside the booking flow.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingRequest is a tenant's non-paying request to rent a property on one or
// more dates.
//
// Storage model (DynamoDB):
//   - bookings PK: id; GSIs tenant_id-index, owner_id-index
//   - booking_dates PK: booking_id, SK: date (one item per reservation date)
//
// CommissionFee and MonthlyRent are snapshots taken when the request is created.
type BookingRequest struct {
	ID               string        `json:"id"`
	HouseID          string        `json:"house_id"`
	TenantID         string        `json:"tenant_id"`
	OwnerID          string        `json:"owner_id"`
	TenantName       string        `json:"tenant_name"`
	TenantPhone      string        `json:"tenant_phone"`
	StartDate        string        `json:"start_date"`
	EndDate          string        `json:"end_date"`
	MoveInDate       string        `json:"move_in_date"`
	ReservationDates []string      `json:"reservation_dates"`
	Status           BookingStatus `json:"status"`
	CommissionFee    *int64        `json:"commission_fee"`
	MonthlyRent      float64       `json:"monthly_rent"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}
