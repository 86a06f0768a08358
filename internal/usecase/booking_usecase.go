package usecase

import (
	"context"
	"errors"
	"log"
	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidTenantID      = errors.New("invalid tenant id")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrNoReservationDates   = errors.New("at least one reservation date is required")
	ErrBookingForbidden     = errors.New("booking belongs to another user")
)

type SubmitBookingCommand struct {
	HouseID     string
	TenantID    string
	TenantName  string
	TenantPhone string
	Dates       []string
	Message     string
}

// BookingReceipt is returned to the tenant after a successful submission. The
// owner's phone is the value the booking flow delivers.
type BookingReceipt struct {
	Booking    entities.BookingRequest
	OwnerPhone string
}

// BookingQuote tells the date picker which dates are selectable and what the
// request will snapshot.
type BookingQuote struct {
	HouseID       string
	Window        entities.BookingWindow
	CommissionFee *int64
	MonthlyRent   float64
}

// Viewer identifies who is reading a booking.
type Viewer struct {
	UserID  string
	IsAdmin bool
}

type IBookingUseCase interface {
	Quote(ctx context.Context, houseID string) (BookingQuote, error)
	SubmitBooking(ctx context.Context, cmd SubmitBookingCommand) (BookingReceipt, error)
	GetByID(ctx context.Context, id string, viewer Viewer) (entities.BookingRequest, error)
	List(ctx context.Context, filter interfaces.BookingFilter) ([]entities.BookingRequest, error)
}

type BookingUseCase struct {
	bookings interfaces.IBookingRepository
	houses   interfaces.IHouseRepository
	profiles interfaces.IProfileRepository
	now      func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(bookings interfaces.IBookingRepository, houses interfaces.IHouseRepository, profiles interfaces.IProfileRepository) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, houses: houses, profiles: profiles, now: time.Now}
}

// today is the current date in Abidjan. Côte d'Ivoire is on GMT with no DST,
// so UTC is exact.
func (u *BookingUseCase) today() time.Time {
	return u.now().UTC()
}

func (u *BookingUseCase) Quote(ctx context.Context, houseID string) (BookingQuote, error) {
	house, err := u.loadHouse(ctx, houseID)
	if err != nil {
		return BookingQuote{}, err
	}
	return BookingQuote{
		HouseID:       house.ID,
		Window:        entities.NewBookingWindow(u.today()),
		CommissionFee: bookingFee(house.Type),
		MonthlyRent:   house.Price,
	}, nil
}

func (u *BookingUseCase) SubmitBooking(ctx context.Context, cmd SubmitBookingCommand) (BookingReceipt, error) {
	tenantID := strings.TrimSpace(cmd.TenantID)
	if tenantID == "" {
		return BookingReceipt{}, ErrInvalidTenantID
	}
	name := strings.TrimSpace(cmd.TenantName)
	phone := normalizePhone(cmd.TenantPhone)
	if name == "" || phone == "" {
		return BookingReceipt{}, ErrMissingTenantDetails
	}
	if len(cmd.Dates) == 0 {
		return BookingReceipt{}, ErrNoReservationDates
	}

	house, err := u.loadHouse(ctx, cmd.HouseID)
	if err != nil {
		return BookingReceipt{}, err
	}

	dates := entities.NewReservationDates(entities.NewBookingWindow(u.today()))
	for _, d := range cmd.Dates {
		if _, err := dates.Add(strings.TrimSpace(d)); err != nil {
			return BookingReceipt{}, err
		}
	}
	start, end, _ := dates.Range()

	b := entities.BookingRequest{
		ID:               uuid.NewString(),
		HouseID:          house.ID,
		TenantID:         tenantID,
		OwnerID:          house.OwnerID,
		TenantName:       name,
		TenantPhone:      phone,
		StartDate:        start,
		EndDate:          end,
		MoveInDate:       start,
		ReservationDates: dates.Sorted(),
		Status:           entities.BookingStatusPending,
		CommissionFee:    bookingFee(house.Type),
		MonthlyRent:      house.Price,
		Notes:            strings.TrimSpace(cmd.Message),
		CreatedAt:        u.now().UTC(),
	}

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] create failed house_id=%s tenant_id=%s err=%v", house.ID, tenantID, err)
		return BookingReceipt{}, err
	}
	log.Printf("[booking][usecase] submitted booking_id=%s house_id=%s start=%s end=%s dates=%d", created.ID, created.HouseID, created.StartDate, created.EndDate, len(created.ReservationDates))

	owner := ownerProfile(ctx, u.profiles, house.OwnerID)
	return BookingReceipt{Booking: created, OwnerPhone: owner.Phone}, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string, viewer Viewer) (entities.BookingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingRequest{}, ErrInvalidBookingID
	}

	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if b.ID == "" {
		return entities.BookingRequest{}, ErrBookingNotFound
	}
	if !viewer.IsAdmin && viewer.UserID != b.TenantID && viewer.UserID != b.OwnerID {
		return entities.BookingRequest{}, ErrBookingForbidden
	}
	return b, nil
}

func (u *BookingUseCase) List(ctx context.Context, filter interfaces.BookingFilter) ([]entities.BookingRequest, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidBookingStatus
	}
	return u.bookings.List(ctx, filter)
}

func (u *BookingUseCase) loadHouse(ctx context.Context, houseID string) (entities.House, error) {
	houseID = strings.TrimSpace(houseID)
	if houseID == "" {
		return entities.House{}, ErrInvalidHouseID
	}
	house, err := u.houses.GetByID(ctx, houseID)
	if err != nil {
		return entities.House{}, err
	}
	if house.ID == "" {
		return entities.House{}, ErrHouseNotFound
	}
	return house, nil
}

func bookingFee(t entities.PropertyType) *int64 {
	amount, ok := t.BookingCommission()
	if !ok {
		return nil
	}
	return &amount
}
