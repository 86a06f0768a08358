package interfaces

import (
	"context"
	"loki/internal/domain/entities"
)

type BookingFilter struct {
	Status   entities.BookingStatus
	TenantID string
	OwnerID  string
}

// IBookingRepository abstracts persistence for booking requests and their
// reservation dates.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error)
	GetByID(ctx context.Context, id string) (entities.BookingRequest, error)
	List(ctx context.Context, filter BookingFilter) ([]entities.BookingRequest, error)
}
